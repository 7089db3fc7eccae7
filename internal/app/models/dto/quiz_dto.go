package dto

// QuizAnswers maps the fixed answer keys to the selected option values.
// Only the genre answer influences the recommendation in this design.
type QuizAnswers struct {
	Genre string `json:"genre,omitempty" example:"scifi"`
	Mood  string `json:"mood,omitempty" example:"adventurous"`
	Time  string `json:"time,omitempty" example:"long"`
}

// RecommendationRequest carries the submitted quiz answers
type RecommendationRequest struct {
	Answers QuizAnswers `json:"answers"`
}
