package entity

import (
	"time"
)

// Result is one scored quiz attempt. Append-only: a user submitting the same
// quiz twice produces two rows. UserID and QuizID are weak references; the
// referenced rows may be deleted later and the result stays.
type Result struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	QuizID    string    `json:"quiz_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ResultUser is the user snapshot attached to an expanded result.
type ResultUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ResultQuiz is the quiz snapshot attached to an expanded result.
type ResultQuiz struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AdminResult is a result expanded with snapshots of its references, as shown
// in the admin results view. Snapshots are zero-valued when the referenced
// row no longer exists.
type AdminResult struct {
	Result
	User ResultUser `json:"user"`
	Quiz ResultQuiz `json:"quiz"`
}
