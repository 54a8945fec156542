package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/model"
)

func testProfileFor(account model.UserAccount) model.UserProfile {
	return model.UserProfile{
		Account:       account,
		MonthlySalary: 6000,
		FamilyMembers: 2,
		Preferences: model.Preferences{
			MonthlyPriorities: model.DefaultMonthlyPriorities(),
		},
	}
}

func TestShell_Lifecycle(t *testing.T) {
	s := NewShell()
	assert.Equal(t, StateUnauthenticated, s.State())

	account := model.UserAccount{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, s.SignIn(account))
	assert.Equal(t, StateOnboarding, s.State())

	// Double sign-in is rejected
	assert.Error(t, s.SignIn(account))

	require.NoError(t, s.CompleteOnboarding(testProfileFor(account)))
	assert.Equal(t, StateActive, s.State())

	got, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, 6000.0, got.MonthlySalary)

	// Sign-out discards everything and resets the view
	s.SwitchView(ViewShopping)
	s.SignOut()
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Equal(t, ViewDashboard, s.ActiveView())
	_, ok = s.Profile()
	assert.False(t, ok)
	_, ok = s.Account()
	assert.False(t, ok)
}

func TestShell_CompleteOnboardingGuards(t *testing.T) {
	s := NewShell()
	account := model.UserAccount{Name: "Alice", Email: "a@x.com"}

	// No account yet
	assert.Error(t, s.CompleteOnboarding(testProfileFor(account)))

	require.NoError(t, s.SignIn(account))

	// Mismatched account
	other := testProfileFor(model.UserAccount{Name: "Bob", Email: "b@x.com"})
	assert.Error(t, s.CompleteOnboarding(other))

	require.NoError(t, s.CompleteOnboarding(testProfileFor(account)))

	// Completing twice is invalid; edits go through UpdateProfile
	assert.Error(t, s.CompleteOnboarding(testProfileFor(account)))
}

func TestShell_UpdateProfile(t *testing.T) {
	s := NewShell()
	account := model.UserAccount{Name: "Alice", Email: "a@x.com"}

	assert.Error(t, s.UpdateProfile(testProfileFor(account)), "update requires an active session")

	require.NoError(t, s.SignIn(account))
	require.NoError(t, s.CompleteOnboarding(testProfileFor(account)))

	updated := testProfileFor(account)
	updated.MonthlySalary = 9000
	require.NoError(t, s.UpdateProfile(updated))

	got, _ := s.Profile()
	assert.Equal(t, 9000.0, got.MonthlySalary)
}

func TestShell_ProfileCopyIsIndependent(t *testing.T) {
	s := NewShell()
	account := model.UserAccount{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, s.SignIn(account))
	require.NoError(t, s.CompleteOnboarding(testProfileFor(account)))

	copy1, _ := s.Profile()
	copy1.MonthlySalary = 1

	copy2, _ := s.Profile()
	assert.Equal(t, 6000.0, copy2.MonthlySalary)
}
