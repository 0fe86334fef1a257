package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Erkin33/hotel-new-rent/internal/app"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

func TestAuth_RegisterValidation(t *testing.T) {
	s := app.NewAuthService(newFakeStore())
	ctx := context.Background()

	cases := []struct {
		name    string
		user    string
		email   string
		pass    string
		confirm string
	}{
		{"missing fields", "", "a@b.c", "secret1", "secret1"},
		{"short password", "ana", "a@b.c", "12345", "12345"},
		{"mismatch", "ana", "a@b.c", "secret1", "secret2"},
	}
	for _, c := range cases {
		if _, err := s.Register(ctx, c.user, c.email, c.pass, c.confirm, ""); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", c.name, err)
		}
	}
}

func TestAuth_RegisterLoginLogout(t *testing.T) {
	s := app.NewAuthService(newFakeStore())
	ctx := context.Background()

	a, err := s.Register(ctx, "Ana", "Ana@Example.COM", "secret1", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if a.Email != "ana@example.com" {
		t.Errorf("email not lowercased: %q", a.Email)
	}

	// register opens a session
	if user, active := s.Session(ctx); !active || user != "Ana" {
		t.Fatalf("session after register = %q/%v", user, active)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, active := s.Session(ctx); active {
		t.Fatal("session should be closed")
	}

	// login by username or email, case-insensitive
	if _, err := s.Login(ctx, "ANA", "secret1"); err != nil {
		t.Fatalf("login by username: %v", err)
	}
	if _, err := s.Login(ctx, "ana@example.com", "secret1"); err != nil {
		t.Fatalf("login by email: %v", err)
	}

	if _, err := s.Login(ctx, "ana", "wrong"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := s.Login(ctx, "bob", "secret1"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("wrong id err = %v", err)
	}
}

func TestAuth_LoginWithoutAccount(t *testing.T) {
	s := app.NewAuthService(newFakeStore())
	if _, err := s.Login(context.Background(), "ghost", "secret1"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
