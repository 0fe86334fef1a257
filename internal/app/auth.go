package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// AuthService is the demo account flow: one locally stored account, one
// session flag. No hashing, no tokens; it exists so the header widget has
// something to show.
type AuthService struct {
	store domain.Store
}

func NewAuthService(s domain.Store) *AuthService { return &AuthService{store: s} }

func (s *AuthService) account(ctx context.Context) (domain.Account, bool) {
	var a domain.Account
	ok, err := s.store.Get(ctx, domain.KeyAuthUser, &a)
	if err != nil || !ok || a.Username == "" {
		return domain.Account{}, false
	}
	return a, true
}

// Register stores the account and opens a session. Validation messages are
// the ones the form shows inline.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirm, avatar string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return domain.Account{}, fmt.Errorf("%w: please fill all required fields", domain.ErrInvalid)
	}
	if len(password) < 6 {
		return domain.Account{}, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalid)
	}
	if password != confirm {
		return domain.Account{}, fmt.Errorf("%w: passwords do not match", domain.ErrInvalid)
	}
	a := domain.Account{
		Username:  username,
		Email:     email,
		Password:  password,
		Avatar:    avatar,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Set(ctx, domain.KeyAuthUser, a); err != nil {
		return domain.Account{}, err
	}
	if err := s.store.Set(ctx, domain.KeyAuthFlag, "1"); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

// Login accepts email or username as the id.
func (s *AuthService) Login(ctx context.Context, id, password string) (domain.Account, error) {
	a, ok := s.account(ctx)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: no account found, please register first", domain.ErrInvalid)
	}
	lc := strings.ToLower(strings.TrimSpace(id))
	if lc != strings.ToLower(a.Email) && lc != strings.ToLower(a.Username) {
		return domain.Account{}, fmt.Errorf("%w: wrong email/username", domain.ErrInvalid)
	}
	if password != a.Password {
		return domain.Account{}, fmt.Errorf("%w: wrong password", domain.ErrInvalid)
	}
	if err := s.store.Set(ctx, domain.KeyAuthFlag, "1"); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

// Logout clears the session flag; the account record stays.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Del(ctx, domain.KeyAuthFlag)
}

// Session reports whether a session is open and, when it is, the username.
func (s *AuthService) Session(ctx context.Context) (string, bool) {
	var flag string
	if ok, err := s.store.Get(ctx, domain.KeyAuthFlag, &flag); err != nil || !ok || flag != "1" {
		return "", false
	}
	a, ok := s.account(ctx)
	if !ok {
		return "", false
	}
	return a.Username, true
}
