package entity

import (
	"time"
)

// Option is a single answer choice within a question.
type Option struct {
	Text string `json:"option_text"`
}

// Question holds an ordered option list and the index of the correct one.
// CorrectOption must index into Options; creation validates this.
type Question struct {
	Text          string   `json:"question_text"`
	Options       []Option `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Quiz is immutable once created; admins may only delete it.
// The question list is persisted as a single jsonb document.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}
