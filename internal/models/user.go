// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// SkillList is a JSON-encoded list of skill names. Membership is exact and
// case-sensitive.
type SkillList = datatypes.JSONSlice[string]

// User represents a marketplace member. The primary key is the externally
// issued identity of the authenticated subject, not a generated ID.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Location       string    `json:"location,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	SkillsOffered  SkillList `json:"skills_offered"`
	SkillsWanted   SkillList `json:"skills_wanted"`
	Availability   string    `json:"availability,omitempty"`
	IsPublic       bool      `gorm:"default:true" json:"is_public"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsBanned       bool      `gorm:"default:false" json:"is_banned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsVisible reports whether the user may appear in public-facing listings.
func (u *User) IsVisible() bool {
	return u.IsPublic && u.IsActive && !u.IsBanned
}

// HasSkill reports whether the user offers or wants the given skill.
func (u *User) HasSkill(skill string) bool {
	for _, s := range u.SkillsOffered {
		if s == skill {
			return true
		}
	}
	for _, s := range u.SkillsWanted {
		if s == skill {
			return true
		}
	}
	return false
}

// PublicProfile is the visibility-filtered projection of a User returned by
// search and public listings. Email and moderation flags stay private.
type PublicProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	SkillsOffered  SkillList `json:"skills_offered"`
	SkillsWanted   SkillList `json:"skills_wanted"`
	Availability   string    `json:"availability,omitempty"`
}

// Public returns the public projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		Location:       u.Location,
		ProfilePicture: u.ProfilePicture,
		SkillsOffered:  u.SkillsOffered,
		SkillsWanted:   u.SkillsWanted,
		Availability:   u.Availability,
	}
}
