package components

import "github.com/modaber/modaber/internal/model"

// AuthCompletedMsg is sent when a sign-in or social sign-in succeeds.
// Failed attempts stay inside the auth component and render inline.
type AuthCompletedMsg struct {
	Account model.UserAccount
}

// OnboardingDoneMsg is sent when the wizard's final confirmation commits
// the first profile.
type OnboardingDoneMsg struct {
	Profile model.UserProfile
}

// ProfileSavedMsg is sent when the profile editor's save action produces a
// validated replacement profile.
type ProfileSavedMsg struct {
	Profile model.UserProfile
}

// RecalculateMsg is sent when the budget view requests a fresh plan.
type RecalculateMsg struct{}
