package models

import "time"

// Rating bounds for swap feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a post-swap rating left by one swap participant about the
// other. It may only exist while the owning swap is accepted, and each rater
// may leave at most one feedback per swap.
type Feedback struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	SwapRequestID string    `gorm:"not null;index;uniqueIndex:idx_feedback_swap_rater" json:"swap_request_id"`
	FromUserID    string    `gorm:"not null;uniqueIndex:idx_feedback_swap_rater" json:"from_user_id"`
	ToUserID      string    `gorm:"not null" json:"to_user_id"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	SwapRequest *SwapRequest `gorm:"foreignKey:SwapRequestID" json:"swap_request,omitempty"`
}

// TableName specifies the table name for GORM
func (Feedback) TableName() string {
	return "feedback"
}

// ValidRating reports whether the rating is within the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
