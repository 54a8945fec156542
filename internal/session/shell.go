// Package session holds the top-level application state machine: who is
// signed in, whether a profile exists, and which view is active.
package session

import (
	"fmt"

	"github.com/modaber/modaber/internal/model"
)

// State is the top-level gate of the application.
type State int

// Session states. The shell moves strictly forward through them; sign-out
// returns to StateUnauthenticated from anywhere.
const (
	StateUnauthenticated State = iota // no account
	StateOnboarding                   // account, no profile
	StateActive                       // account and profile
)

// ViewTag identifies one of the fixed set of views reachable from the
// sidebar while the session is active.
type ViewTag string

// Available views.
const (
	ViewDashboard   ViewTag = "dashboard"
	ViewBudget      ViewTag = "budget"
	ViewPrices      ViewTag = "prices"
	ViewShopping    ViewTag = "shopping"
	ViewInvestments ViewTag = "investments"
	ViewAnalytics   ViewTag = "analytics"
	ViewProfile     ViewTag = "profile"
	ViewHowItWorks  ViewTag = "how-it-works"
	ViewPrivacy     ViewTag = "privacy"
)

// SidebarViews returns the navigation order of the main views.
func SidebarViews() []ViewTag {
	return []ViewTag{
		ViewDashboard, ViewBudget, ViewPrices, ViewShopping,
		ViewInvestments, ViewAnalytics, ViewProfile,
		ViewHowItWorks, ViewPrivacy,
	}
}

// Shell owns the session state. View controllers receive the profile from
// here and never write back except through UpdateProfile (the profile
// editor's save).
type Shell struct {
	account *model.UserAccount
	profile *model.UserProfile
	view    ViewTag
}

// NewShell starts unauthenticated with the dashboard preselected.
func NewShell() *Shell {
	return &Shell{view: ViewDashboard}
}

// State derives the current gate from what exists.
func (s *Shell) State() State {
	switch {
	case s.account == nil:
		return StateUnauthenticated
	case s.profile == nil:
		return StateOnboarding
	default:
		return StateActive
	}
}

// SignIn installs the authenticated account and moves to onboarding (or
// directly past it is impossible: a fresh session never has a profile).
func (s *Shell) SignIn(account model.UserAccount) error {
	if s.account != nil {
		return fmt.Errorf("already signed in as %s", s.account.Email)
	}
	s.account = &account
	return nil
}

// CompleteOnboarding installs the first committed profile.
func (s *Shell) CompleteOnboarding(p model.UserProfile) error {
	if s.State() != StateOnboarding {
		return fmt.Errorf("onboarding completion requires an account and no profile")
	}
	if p.Account.Email != s.account.Email {
		return fmt.Errorf("profile account %s does not match session account %s", p.Account.Email, s.account.Email)
	}
	s.profile = &p
	return nil
}

// UpdateProfile atomically replaces the committed profile. Only the profile
// editor's save action calls this.
func (s *Shell) UpdateProfile(p model.UserProfile) error {
	if s.State() != StateActive {
		return fmt.Errorf("no committed profile to replace")
	}
	s.profile = &p
	return nil
}

// SignOut unconditionally discards the in-memory account and profile.
// Persisted credentials are untouched.
func (s *Shell) SignOut() {
	s.account = nil
	s.profile = nil
	s.view = ViewDashboard
}

// Account returns the signed-in account, if any.
func (s *Shell) Account() (model.UserAccount, bool) {
	if s.account == nil {
		return model.UserAccount{}, false
	}
	return *s.account, true
}

// Profile returns a copy of the committed profile, if any. Callers own the
// copy; mutating it never affects the session.
func (s *Shell) Profile() (model.UserProfile, bool) {
	if s.profile == nil {
		return model.UserProfile{}, false
	}
	return s.profile.Clone(), true
}

// ActiveView returns the currently selected view tag.
func (s *Shell) ActiveView() ViewTag {
	return s.view
}

// SwitchView selects a view. The caller is responsible for discarding the
// outgoing controller's transient state.
func (s *Shell) SwitchView(v ViewTag) {
	s.view = v
}
