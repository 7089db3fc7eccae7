package models

// QuizOption is one selectable answer for a quiz question
type QuizOption struct {
	Value string `json:"value" example:"scifi"`
	Label string `json:"label" example:"Sci-Fi"`
}

// QuizQuestion is one entry of the static recommendation quiz
type QuizQuestion struct {
	ID       int          `json:"id" example:"1"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}
