package dto

// CreateWatchPartyRequest carries the payload for scheduling a watch party.
// All fields are taken verbatim; scheduledFor format, platform and the
// maxParticipants bounds are not validated server-side.
type CreateWatchPartyRequest struct {
	Title           string `json:"title"`
	MovieID         string `json:"movieId"`
	ScheduledFor    string `json:"scheduledFor"`
	Platform        string `json:"platform"`
	MaxParticipants int    `json:"maxParticipants"`
	Description     string `json:"description"`
}
