// Package auth issues and verifies the sessions of users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// DefaultTokenTTL is the lifetime of a session if Config.TokenTTL is not set.
const DefaultTokenTTL = 24 * time.Hour

// Event is a change of the session state.
type Event string

const (
	SignedIn  Event = "SIGNED_IN"
	SignedOut Event = "SIGNED_OUT"
)

// Session is an authenticated user.
type Session struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID    uuid.UUID `json:"userId" example:"0f12e0c5-03a6-4b4c-9f3c-06c1f2b3d7a1"`
	Email     string    `json:"email" example:"maria@example.com"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-16T12:00:00Z"`
	id        string
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Config configures the token issuance.
type Config struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

// Service signs users up, in and out.
type Service struct {
	db          *gorm.DB
	secret      []byte
	ttl         time.Duration
	issuer      string
	revocations Revocations
	validate    *validator.Validate
	now         func() time.Time

	mu        sync.Mutex
	listeners map[int]func(Event, Session)
	nextID    int
}

func NewService(db *gorm.DB, cfg Config, revocations Revocations) *Service {
	if cfg.Issuer == "" {
		cfg.Issuer = "fintrack"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}

	return &Service{
		db:          db,
		secret:      []byte(cfg.Secret),
		ttl:         cfg.TokenTTL,
		issuer:      cfg.Issuer,
		revocations: revocations,
		validate:    validator.New(),
		now:         time.Now,
		listeners:   make(map[int]func(Event, Session)),
	}
}

// SignUp creates a user with its profile and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return Session{}, ErrInvalidEmail
	}

	if len(password) < minPasswordLength {
		return Session{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{DisplayName: displayName}
		profile.ID = user.ID
		profile.SetOwner(user.ID)
		return tx.Create(&profile).Error
	})
	if err != nil {
		return Session{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("user signed up")
	return s.issue(user)
}

// SignIn verifies the password and issues a new session.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return Session{}, ErrInvalidCredentials
	} else if err != nil {
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

// SignOut revokes the session until it would have expired anyway.
func (s *Service) SignOut(ctx context.Context, token string) error {
	session, err := s.GetSession(ctx, token)
	if err != nil {
		return err
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if err := s.revocations.Revoke(ctx, session.id, ttl); err != nil {
		return err
	}

	s.emit(SignedOut, session)
	return nil
}

// GetSession verifies the token and returns its session.
func (s *Service) GetSession(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Session{}, ErrExpiredToken
	} else if err != nil {
		return Session{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return Session{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	revoked, err := s.revocations.IsRevoked(ctx, c.ID)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, ErrTokenRevoked
	}

	return Session{
		Token:     token,
		UserID:    userID,
		Email:     c.Email,
		ExpiresAt: c.ExpiresAt.Time.UTC(),
		id:        c.ID,
	}, nil
}

// OnSessionChange registers fn to be called when a user signs in or out.
// The returned function removes the listener.
func (s *Service) OnSessionChange(fn func(Event, Session)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) issue(user models.User) (Session, error) {
	now := s.now()
	expires := now.Add(s.ttl)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email: user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: c.ExpiresAt.Time.UTC(),
		id:        c.ID,
	}

	s.emit(SignedIn, session)
	return session, nil
}

func (s *Service) emit(event Event, session Session) {
	s.mu.Lock()
	listeners := make([]func(Event, Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(event, session)
	}
}
