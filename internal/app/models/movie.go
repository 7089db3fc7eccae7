package models

// Movie defines a catalog entry. The catalog is static seed data, there are
// no mutation endpoints for it.
type Movie struct {
	ID                 string   `json:"id" example:"1"`
	Title              string   `json:"title" example:"Inception"`
	Year               int      `json:"year" example:"2010"`
	Genre              []string `json:"genre"`
	Director           string   `json:"director" example:"Christopher Nolan"`
	Rating             float64  `json:"rating" example:"8.8"`
	Poster             string   `json:"poster"`
	Description        string   `json:"description"`
	StreamingPlatforms []string `json:"streamingPlatforms"`
}

// HasAnyGenre reports whether the movie's genre list intersects the given set
func (m *Movie) HasAnyGenre(genres []string) bool {
	for _, g := range m.Genre {
		for _, want := range genres {
			if g == want {
				return true
			}
		}
	}
	return false
}
