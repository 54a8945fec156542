package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

func newTestAuth() AuthModel {
	return NewAuthModel(nil, themes.Dark, i18n.New(i18n.English))
}

func TestAuthStartsOnLogin(t *testing.T) {
	m := newTestAuth()
	assert.Equal(t, modeLogin, m.mode)
	assert.Equal(t, focusEmail, m.focus)
	assert.Contains(t, m.View(), "Login")
}

func TestAuthModeCycle(t *testing.T) {
	m := newTestAuth()

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, modeRegister, m.mode)
	assert.Equal(t, focusName, m.focus)

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, modeForgot, m.mode)

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, modeLogin, m.mode)
}

func TestAuthEscReturnsToLogin(t *testing.T) {
	m := newTestAuth()
	m, _ = m.Update(keyMsg("ctrl+n"))
	require.Equal(t, modeRegister, m.mode)

	m, _ = m.Update(keyMsg("esc"))
	assert.Equal(t, modeLogin, m.mode)
}

func TestAuthTabCyclesLoginControls(t *testing.T) {
	m := newTestAuth()

	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, focusPassword, m.focus)
	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, focusGoogle, m.focus)
	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, focusFacebook, m.focus)
	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, focusEmail, m.focus)

	m, _ = m.Update(keyMsg("shift+tab"))
	assert.Equal(t, focusFacebook, m.focus)
}

func TestAuthErrorText(t *testing.T) {
	m := newTestAuth()

	tests := []struct {
		err  error
		want string
	}{
		{common.ErrDuplicateAccount, m.tr.T(i18n.KeyErrEmailExists)},
		{common.ErrAccountNotFound, m.tr.T(i18n.KeyErrUserNotFound)},
		{common.ErrInvalidCredential, m.tr.T(i18n.KeyErrWrongPassword)},
		{errors.New("disk on fire"), "disk on fire"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.authErrorText(tt.err))
	}
}

func TestAuthLoginFailureShowsError(t *testing.T) {
	m := newTestAuth()
	m.busy = true

	m, cmd := m.Update(authResultMsg{err: common.ErrAccountNotFound})
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), m.tr.T(i18n.KeyErrUserNotFound))
}

func TestAuthLoginSuccessEmitsCompleted(t *testing.T) {
	m := newTestAuth()
	m.busy = true
	account := model.UserAccount{Name: "Test User", Email: "test@example.com"}

	m, cmd := m.Update(authResultMsg{account: account})
	require.NotNil(t, cmd)
	assert.False(t, m.busy)

	done, ok := cmd().(AuthCompletedMsg)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", done.Account.Email)
}

func TestAuthRegisterSuccessReturnsToLogin(t *testing.T) {
	m := newTestAuth()
	m, _ = m.Update(keyMsg("ctrl+n"))
	require.Equal(t, modeRegister, m.mode)
	m.busy = true

	m, _ = m.Update(registerResultMsg{})
	assert.Equal(t, modeLogin, m.mode)
	assert.Contains(t, m.View(), m.tr.T(i18n.KeySuccessRegister))
}

func TestAuthForgotAcknowledgesReset(t *testing.T) {
	m := newTestAuth()
	m, _ = m.Update(keyMsg("ctrl+n"))
	m, _ = m.Update(keyMsg("ctrl+n"))
	require.Equal(t, modeForgot, m.mode)

	m.emailInput.SetValue("test@example.com")
	m, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, modeLogin, m.mode)
	assert.Contains(t, m.View(), m.tr.T(i18n.KeyResetSent))
}

func TestAuthEmptySubmitIsNoop(t *testing.T) {
	m := newTestAuth()

	m, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
}

func TestAuthIgnoresKeysWhileBusy(t *testing.T) {
	m := newTestAuth()
	m.busy = true

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, modeLogin, m.mode)
}

func TestAuthTypingGatesSocialFocus(t *testing.T) {
	m := newTestAuth()
	assert.True(t, m.Typing())

	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(keyMsg("tab"))
	require.Equal(t, focusGoogle, m.focus)
	assert.False(t, m.Typing())
}
