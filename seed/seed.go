// Package seed creates demo data for local development. Not used in
// production.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shin101/warbler/auth"
	"github.com/shin101/warbler/models"
	"github.com/shin101/warbler/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users           int
	MessagesPerUser int
	FollowsPerUser  int
	LikesPerUser    int
}

// DefaultOptions returns a small but usable demo dataset.
func DefaultOptions() Options {
	return Options{
		Users:           15,
		MessagesPerUser: 8,
		FollowsPerUser:  5,
		LikesPerUser:    10,
	}
}

// Run populates the database with fake users, messages, follow edges, and
// likes. All demo accounts share the password "password".
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	ctx := context.Background()

	users := repository.NewUserRepository(db)
	messages := repository.NewMessageRepository(db)
	follows := repository.NewFollowRepository(db)
	likes := repository.NewLikeRepository(db)

	// MinCost keeps seeding fast; these are throwaway credentials.
	hashed, err := auth.HashPassword("password", bcrypt.MinCost)
	if err != nil {
		return err
	}

	created := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:       fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:          fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password:       hashed,
			Bio:            gofakeit.Sentence(8),
			Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
			ImageURL:       models.DefaultImageURL,
			HeaderImageURL: models.DefaultHeaderImageURL,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		created = append(created, user)
	}
	log.Printf("Seeded %d users", len(created))

	var allMessages []*models.Message
	for _, user := range created {
		for i := 0; i < opts.MessagesPerUser; i++ {
			text := gofakeit.Sentence(r.Intn(12) + 3)
			if len(text) > models.MaxMessageLength {
				text = text[:models.MaxMessageLength]
			}
			ts := time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour)
			msg, err := messages.Create(ctx, user.ID, text, ts)
			if err != nil {
				return fmt.Errorf("seed message for user %d: %w", user.ID, err)
			}
			allMessages = append(allMessages, msg)
		}
	}
	log.Printf("Seeded %d messages", len(allMessages))

	for _, user := range created {
		for i := 0; i < opts.FollowsPerUser; i++ {
			target := created[r.Intn(len(created))]
			if target.ID == user.ID {
				continue
			}
			if err := follows.Follow(ctx, user.ID, target.ID); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
		for i := 0; i < opts.LikesPerUser; i++ {
			msg := allMessages[r.Intn(len(allMessages))]
			if msg.UserID == user.ID {
				continue
			}
			if err := likes.Like(ctx, user.ID, msg.ID); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}
	log.Println("Seeded follow and like edges")

	return nil
}
