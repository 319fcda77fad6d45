package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gfdmit/adhd-forum/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Session state is two-valued: Anonymous (no session user stored) and
// Authenticated (a session user stored). Login and Signup report failure
// as a nil user, never as an error, and do not say why.

type SignupInput struct {
	Username string
	Email    string
	Password string
	ADHDType string
}

func (svc *Service) CurrentUser(ctx context.Context) (*repository.User, error) {
	return svc.repo.SessionUser(ctx)
}

func (svc *Service) Login(ctx context.Context, email, password string) (*repository.User, error) {
	users, err := svc.repo.RegisteredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, cred := range users {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)) != nil {
			continue
		}
		user := cred.User
		user.IsOnline = true
		if user.Role == "" {
			user.Role = repository.RoleMember
		}
		if err := svc.repo.SetSessionUser(ctx, &user); err != nil {
			return nil, err
		}
		return &user, nil
	}
	return nil, nil
}

func (svc *Service) Signup(ctx context.Context, input SignupInput) (*repository.User, error) {
	users, err := svc.repo.RegisteredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, cred := range users {
		if cred.Email == input.Email || cred.Username == input.Username {
			return nil, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword: %v", err)
	}

	user := repository.User{
		ID:         newUserID(),
		Username:   input.Username,
		Avatar:     avatarURL(input.Username),
		ADHDType:   input.ADHDType,
		JoinedAt:   time.Now(),
		IsOnline:   true,
		Role:       repository.RoleMember,
		IsVerified: false,
	}

	cred := repository.Credential{
		User:     user,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := svc.repo.AddRegisteredUser(ctx, cred); err != nil {
		return nil, err
	}
	if err := svc.repo.SetSessionUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the session unconditionally; logging out while anonymous
// is a no-op.
func (svc *Service) Logout(ctx context.Context) error {
	return svc.repo.ClearSessionUser(ctx)
}

func newUserID() string {
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}

func avatarURL(username string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=6366f1&color=fff", url.QueryEscape(username))
}
