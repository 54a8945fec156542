// Package auth implements the local account store: a mock credential
// registry standing in for a real identity provider. The Service interface
// is the swappable capability boundary a real backend would implement.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// Provider identifies a social sign-in provider.
type Provider string

// Supported social providers.
const (
	ProviderGoogle   Provider = "Google"
	ProviderFacebook Provider = "Facebook"
)

// CredentialStore defines the persistence operations the service needs.
type CredentialStore interface {
	SaveCredential(ctx context.Context, cred *model.StoredCredential) error
	GetCredential(ctx context.Context, email string) (*model.StoredCredential, error)
}

// Service is the account capability contract: register, password login, and
// idempotent social sign-in. All operations are synchronous against the
// local store; there is no network I/O.
type Service interface {
	Register(ctx context.Context, email, name, password string) (*model.StoredCredential, error)
	Login(ctx context.Context, email, password string) (model.UserAccount, error)
	LoginOrRegisterSocial(ctx context.Context, provider Provider, email, name string) (model.UserAccount, error)
}

type service struct {
	store CredentialStore
}

// NewService creates an account service backed by the given store.
func NewService(store CredentialStore) Service {
	return &service{store: store}
}

// Register creates a credential for a new email. Fails with
// ErrDuplicateAccount when the email is already registered.
func (s *service) Register(ctx context.Context, email, name, password string) (*model.StoredCredential, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, common.NewValidationError("email", "required")
	}
	if name == "" {
		return nil, common.NewValidationError("name", "required")
	}
	if password == "" {
		return nil, common.NewValidationError("password", "required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := &model.StoredCredential{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Avatar:       avatarURL(name, registerAvatarColor),
	}
	if err := s.store.SaveCredential(ctx, cred); err != nil {
		return nil, err
	}

	slog.Info("Registered account", "email", email)
	return cred, nil
}

// Login checks the password against the stored hash and returns the public
// account. Social credentials never match a typed password: their stored
// hash belongs to a random placeholder.
func (s *service) Login(ctx context.Context, email, password string) (model.UserAccount, error) {
	cred, err := s.store.GetCredential(ctx, strings.TrimSpace(email))
	if err != nil {
		return model.UserAccount{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return model.UserAccount{}, fmt.Errorf("%w: %s", common.ErrInvalidCredential, email)
	}
	return cred.Account(), nil
}

// LoginOrRegisterSocial creates the credential with a random password
// placeholder when absent, otherwise reuses the existing one. The placeholder
// is never checked for social logins.
func (s *service) LoginOrRegisterSocial(ctx context.Context, provider Provider, email, name string) (model.UserAccount, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return model.UserAccount{}, common.NewValidationError("account", "email and name are required")
	}

	cred, err := s.store.GetCredential(ctx, email)
	if err == nil {
		return cred.Account(), nil
	}

	placeholder, err := randomPlaceholder()
	if err != nil {
		return model.UserAccount{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
	if err != nil {
		return model.UserAccount{}, fmt.Errorf("failed to hash placeholder: %w", err)
	}

	cred = &model.StoredCredential{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Avatar:       avatarURL(name, providerAvatarColor(provider)),
		Social:       true,
	}
	if err := s.store.SaveCredential(ctx, cred); err != nil {
		return model.UserAccount{}, err
	}

	slog.Info("Registered social account", "email", email, "provider", provider)
	return cred.Account(), nil
}

// randomPlaceholder generates an opaque password for social credentials.
func randomPlaceholder() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate placeholder: %w", err)
	}
	return "social-" + hex.EncodeToString(buf), nil
}
