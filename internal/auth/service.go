package auth

import (
	"context"
	"fmt"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/user"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Service handles account registration, login and profile management.
type Service struct {
	users storage.UserStore
	jwt   *JWTManager
	clock time2.Clock
}

// NewService creates the auth service.
func NewService(users storage.UserStore, jwt *JWTManager, clock time2.Clock) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		clock: clock,
	}
}

// Register creates a new account. A duplicate email fails with
// interview.ErrConflict.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*user.User, error) {
	if existing, err := s.users.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email is already registered", interview.ErrConflict)
	} else if err != nil && !errors.Is(err, interview.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing email")
	}

	u, err := user.New(email, password, firstName, lastName, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveUser(ctx, u); err != nil {
		return nil, errors.Wrap(err, "persist user")
	}

	log.Info().Str("user_id", u.ID).Msg("User registered")
	return u, nil
}

// Login verifies the credentials, records the login time and issues an
// access token. Unknown emails and wrong passwords fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", interview.ErrValidation)
		}
		return nil, "", errors.Wrap(err, "resolve user")
	}
	if !u.CheckPassword(password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", interview.ErrValidation)
	}

	now := s.clock.Now()
	u.LastLogin = &now
	if err := s.users.UpdateUser(ctx, u); err != nil {
		return nil, "", errors.Wrap(err, "record login time")
	}

	token, err := s.jwt.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", errors.Wrap(err, "issue token")
	}

	log.Info().Str("user_id", u.ID).Msg("User logged in")
	return u, token, nil
}

// GetProfile returns the account by id.
func (s *Service) GetProfile(ctx context.Context, userID string) (*user.User, error) {
	return s.users.GetUser(ctx, userID)
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FirstName           *string
	LastName            *string
	PreferredDifficulty *string
	AnxietyLevel        *int
	Password            *string
}

// UpdateProfile applies the given changes to the account.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*user.User, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.PreferredDifficulty != nil {
		u.PreferredDifficulty = *update.PreferredDifficulty
	}
	if update.AnxietyLevel != nil {
		if *update.AnxietyLevel < 1 || *update.AnxietyLevel > 10 {
			return nil, fmt.Errorf("%w: anxiety_level must be between 1 and 10", interview.ErrValidation)
		}
		u.AnxietyLevel = *update.AnxietyLevel
	}
	if update.Password != nil {
		if err := u.SetPassword(*update.Password); err != nil {
			return nil, err
		}
	}

	if err := s.users.UpdateUser(ctx, u); err != nil {
		return nil, errors.Wrap(err, "persist profile update")
	}
	return u, nil
}
