package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// memStore is an in-memory CredentialStore for tests.
type memStore struct {
	creds map[string]*model.StoredCredential
}

func newMemStore() *memStore {
	return &memStore{creds: make(map[string]*model.StoredCredential)}
}

func (m *memStore) SaveCredential(_ context.Context, cred *model.StoredCredential) error {
	if _, ok := m.creds[cred.Email]; ok {
		return fmt.Errorf("%w: %s", common.ErrDuplicateAccount, cred.Email)
	}
	copied := *cred
	m.creds[cred.Email] = &copied
	return nil
}

func (m *memStore) GetCredential(_ context.Context, email string) (*model.StoredCredential, error) {
	cred, ok := m.creds[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrAccountNotFound, email)
	}
	copied := *cred
	return &copied, nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())

	cred, err := svc.Register(ctx, "a@x.com", "Alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", cred.Email)
	assert.NotEqual(t, "pw1", cred.PasswordHash, "password must be stored hashed")
	assert.Contains(t, cred.Avatar, "ui-avatars.com")

	// Same email again fails with DuplicateAccount
	_, err = svc.Register(ctx, "a@x.com", "Alice Again", "pw2")
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)

	// Wrong password fails with InvalidCredential
	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredential)

	// Unknown email fails with AccountNotFound
	_, err = svc.Login(ctx, "nobody@x.com", "pw1")
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	// Correct password returns the public account
	account, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "a@x.com", account.Email)
}

func TestRegister_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())

	_, err := svc.Register(ctx, "", "Alice", "pw")
	assert.True(t, common.IsValidation(err))

	_, err = svc.Register(ctx, "a@x.com", "", "pw")
	assert.True(t, common.IsValidation(err))

	_, err = svc.Register(ctx, "a@x.com", "Alice", "")
	assert.True(t, common.IsValidation(err))
}

func TestLoginOrRegisterSocial_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store)

	first, err := svc.LoginOrRegisterSocial(ctx, ProviderGoogle, "g@x.com", "Gina")
	require.NoError(t, err)
	assert.Equal(t, "Gina", first.Name)
	assert.Contains(t, first.Avatar, googleAvatarColor)

	// Second sign-in reuses the existing credential
	again, err := svc.LoginOrRegisterSocial(ctx, ProviderGoogle, "g@x.com", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Len(t, store.creds, 1)

	// The placeholder password is never a usable login credential
	_, err = svc.Login(ctx, "g@x.com", "social-anything")
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
	assert.True(t, store.creds["g@x.com"].Social)
}

func TestAvatarURL_Deterministic(t *testing.T) {
	a := avatarURL("Alice Smith", registerAvatarColor)
	b := avatarURL("Alice Smith", registerAvatarColor)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Alice+Smith")
}
