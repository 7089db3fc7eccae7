package models

import "time"

// WatchParty is a scheduled, capacity-bounded group viewing event tied to
// one movie and one streaming platform. ScheduledFor is stored verbatim as
// submitted by the client; the server does not validate its format.
type WatchParty struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	MovieID         string   `json:"movieId"`
	HostID          string   `json:"hostId"`
	HostUsername    string   `json:"hostUsername"`
	ScheduledFor    string   `json:"scheduledFor"`
	Platform        string   `json:"platform"`
	Participants    []string `json:"participants"`
	MaxParticipants int      `json:"maxParticipants"`
	Description     string   `json:"description"`
}

// HasParticipant reports whether the user already joined the party
func (w *WatchParty) HasParticipant(userID string) bool {
	for _, id := range w.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the party reached its participant cap
func (w *WatchParty) IsFull() bool {
	return len(w.Participants) >= w.MaxParticipants
}

// ScheduledTime parses ScheduledFor as RFC3339. The second return value is
// false when the stored value is not a parseable timestamp.
func (w *WatchParty) ScheduledTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, w.ScheduledFor)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsUpcomingAt classifies the party against the given instant. Upcoming vs
// past is always computed at read time, never stored.
func (w *WatchParty) IsUpcomingAt(now time.Time) bool {
	t, ok := w.ScheduledTime()
	if !ok {
		return false
	}
	return t.After(now)
}
