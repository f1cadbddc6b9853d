// Package service implements account business logic on top of the
// repositories: signup, credential verification, and account deletion.
package service

import (
	"context"
	"errors"

	"github.com/shin101/warbler/auth"
	"github.com/shin101/warbler/models"
	"github.com/shin101/warbler/repository"
	"github.com/shin101/warbler/validation"
)

// UserService owns account creation and authentication.
type UserService struct {
	users repository.UserRepository
	cost  int
	// dummyHash is compared against on unknown-username lookups so the
	// miss path costs the same as a wrong-password path.
	dummyHash string
}

// NewUserService creates a user service with the given bcrypt cost.
func NewUserService(users repository.UserRepository, bcryptCost int) (*UserService, error) {
	dummy, err := auth.HashPassword("warbler-dummy-credential", bcryptCost)
	if err != nil {
		return nil, err
	}
	return &UserService{users: users, cost: bcryptCost, dummyHash: dummy}, nil
}

// Signup hashes the password and persists a new user. The returned entity
// never carries the plaintext. A duplicate username or email propagates as a
// conflict error; it is never retried here.
func (s *UserService) Signup(ctx context.Context, username, email, password, imageURL string) (*models.User, error) {
	if err := validation.ValidateSignup(username, email, password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := auth.HashPassword(password, s.cost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}
	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       hashed,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks the user up by username and verifies the password.
// Unknown username and wrong password both return models.ErrNoMatch, with a
// dummy hash compare on the unknown-username path so the two are not
// distinguishable by timing.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		auth.CheckPassword(password, s.dummyHash)
		return nil, models.ErrNoMatch
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, models.ErrNoMatch
	}
	return user, nil
}

// DeleteAccount removes the user and all dependent rows.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.users.Delete(ctx, userID)
}

// IsNoMatch reports whether err is the authentication no-match sentinel.
func IsNoMatch(err error) bool {
	return errors.Is(err, models.ErrNoMatch)
}
