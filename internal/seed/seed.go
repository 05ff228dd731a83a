// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumSwaps    int
	ShouldClean bool
}

var skillPool = []string{
	"Guitar", "Piano", "Singing", "Drawing", "Painting", "Photography",
	"Cooking", "Baking", "Gardening", "Carpentry", "Knitting", "Pottery",
	"Spanish", "French", "German", "Japanese", "Sign Language",
	"Go", "Python", "Web Design", "Video Editing", "Public Speaking",
	"Chess", "Yoga", "Swimming", "Rock Climbing", "First Aid",
}

var availabilities = []string{
	"weekends", "weekday evenings", "mornings", "flexible", "sundays only",
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	now := time.Now().UnixNano()
	gofakeit.Seed(now)
	return &Seeder{db: db, r: rand.New(rand.NewSource(now))}
}

// ClearAll removes all seeded domain data.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"feedback", "swap_requests", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// skills picks between min and max distinct names from the skill pool.
func (s *Seeder) skills(min, max int) models.SkillList {
	n := min + s.r.Intn(max-min+1)
	picked := make(models.SkillList, 0, n)
	for _, i := range s.r.Perm(len(skillPool))[:n] {
		picked = append(picked, skillPool[i])
	}
	return picked
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		ID:             fmt.Sprintf("seed|%s", uuid.New().String()),
		Name:           gofakeit.Name(),
		Email:          gofakeit.Email(),
		Location:       gofakeit.City(),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		SkillsOffered:  s.skills(1, 4),
		SkillsWanted:   s.skills(1, 3),
		Availability:   availabilities[s.r.Intn(len(availabilities))],
		IsPublic:       s.r.Intn(10) > 0,
		IsActive:       true,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSwap persists a swap between two distinct users with the given
// status, snapshotting their names the way the service layer does.
func (s *Seeder) CreateSwap(from, to *models.User, status models.SwapStatus) (*models.SwapRequest, error) {
	offered := from.SkillsOffered[s.r.Intn(len(from.SkillsOffered))]
	wanted := to.SkillsOffered[s.r.Intn(len(to.SkillsOffered))]

	swap := &models.SwapRequest{
		ID:           uuid.New().String(),
		FromUserID:   from.ID,
		ToUserID:     to.ID,
		FromUserName: from.Name,
		ToUserName:   to.Name,
		SkillOffered: offered,
		SkillWanted:  wanted,
		Message:      gofakeit.Sentence(8),
		Status:       status,
	}
	if err := s.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// Seed populates the database with a mesh of users, swaps in every lifecycle
// state and feedback on a share of the accepted ones.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d swaps...", opts.NumUsers, opts.NumSwaps)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) < 2 {
		return fmt.Errorf("need at least 2 users to seed swaps, have %d", len(users))
	}

	statuses := []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusAccepted,
		models.SwapStatusRejected,
	}

	for i := 0; i < opts.NumSwaps; i++ {
		from := users[s.r.Intn(len(users))]
		to := users[s.r.Intn(len(users))]
		for to.ID == from.ID {
			to = users[s.r.Intn(len(users))]
		}

		swap, err := s.CreateSwap(from, to, statuses[s.r.Intn(len(statuses))])
		if err != nil {
			return fmt.Errorf("create swap: %w", err)
		}

		// Roughly half of the accepted swaps get feedback from the creator.
		if swap.Status == models.SwapStatusAccepted && s.r.Intn(2) == 0 {
			fb := &models.Feedback{
				ID:            uuid.New().String(),
				SwapRequestID: swap.ID,
				FromUserID:    from.ID,
				ToUserID:      to.ID,
				Rating:        models.MinRating + s.r.Intn(models.MaxRating),
				Comment:       gofakeit.Sentence(10),
			}
			if err := s.db.Create(fb).Error; err != nil {
				return fmt.Errorf("create feedback: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users and %d swaps", opts.NumUsers, opts.NumSwaps)
	return nil
}
