// Package service contains the business logic of the application.
package service

import (
	"context"
	"fmt"
	"strings"

	"skillswap/internal/identity"
	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// UserService provides profile and directory business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpsertFromIdentity ensures a local user row exists for the authenticated
// subject, creating one from the identity claims on first contact. Identity
// providers do not always supply a name or email, so both fall back to
// values derived from the subject.
func (s *UserService) UpsertFromIdentity(ctx context.Context, claims *identity.Claims) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err == nil {
		return user, nil
	}
	if !models.IsNotFound(err) {
		return nil, err
	}

	name := claims.Name
	if name == "" {
		name = claims.Subject
	}
	email := claims.Email
	if email == "" {
		email = fmt.Sprintf("%s@users.skillswap.local", claims.Subject)
	}

	user = &models.User{
		ID:       claims.Subject,
		Name:     name,
		Email:    email,
		IsPublic: true,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent first request may have created the row already.
		if models.IsConflict(err) {
			return s.userRepo.GetByID(ctx, claims.Subject)
		}
		return nil, err
	}
	return user, nil
}

// GetByID returns a single user.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name           *string           `json:"name"`
	Location       *string           `json:"location"`
	ProfilePicture *string           `json:"profile_picture"`
	SkillsOffered  *models.SkillList `json:"skills_offered"`
	SkillsWanted   *models.SkillList `json:"skills_wanted"`
	Availability   *string           `json:"availability"`
	IsPublic       *bool             `json:"is_public"`
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		user.Name = name
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.SkillsOffered != nil {
		user.SkillsOffered = *input.SkillsOffered
	}
	if input.SkillsWanted != nil {
		user.SkillsWanted = *input.SkillsWanted
	}
	if input.Availability != nil {
		user.Availability = *input.Availability
	}
	if input.IsPublic != nil {
		user.IsPublic = *input.IsPublic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListPublic returns the browsable directory, excluding the caller.
func (s *UserService) ListPublic(ctx context.Context, callerID string) ([]models.PublicProfile, error) {
	users, err := s.userRepo.ListVisible(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// SearchBySkill returns visible users offering or wanting the given skill.
func (s *UserService) SearchBySkill(ctx context.Context, skill string) ([]models.PublicProfile, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, models.NewValidationError("Skill query cannot be empty")
	}

	users, err := s.userRepo.SearchBySkill(ctx, skill)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// ListAll returns users regardless of visibility, paged by limit/offset.
func (s *UserService) ListAll(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.ListAll(ctx, limit, offset)
}

// SetBanned flips a user's ban flag.
func (s *UserService) SetBanned(ctx context.Context, id string, banned bool) (*models.User, error) {
	return s.userRepo.SetBanned(ctx, id, banned)
}

func publicProfiles(users []models.User) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Public())
	}
	return profiles
}
