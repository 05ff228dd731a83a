package models

import "time"

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates the request is awaiting the recipient's decision.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the recipient accepted the request.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the recipient rejected the request.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCompleted is reserved for a future settlement process.
	// No operation in this service assigns it.
	SwapStatusCompleted SwapStatus = "completed"
)

// SwapRequest is a directed proposal from one user to another to exchange a
// named skill for another. The party display names are snapshotted at
// creation time so later profile renames do not rewrite swap history.
type SwapRequest struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	FromUserID   string     `gorm:"not null;index" json:"from_user_id"`
	ToUserID     string     `gorm:"not null;index" json:"to_user_id"`
	FromUserName string     `gorm:"not null" json:"from_user_name"`
	ToUserName   string     `gorm:"not null" json:"to_user_name"`
	SkillOffered string     `gorm:"not null" json:"skill_offered"`
	SkillWanted  string     `gorm:"not null" json:"skill_wanted"`
	Message      string     `gorm:"type:text" json:"message,omitempty"`
	Status       SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IsParticipant reports whether the given identity is one of the swap's two parties.
func (s *SwapRequest) IsParticipant(userID string) bool {
	return s.FromUserID == userID || s.ToUserID == userID
}

// Counterpart returns the other participant of the swap relative to userID.
// The caller must check IsParticipant first.
func (s *SwapRequest) Counterpart(userID string) string {
	if userID == s.FromUserID {
		return s.ToUserID
	}
	return s.FromUserID
}
