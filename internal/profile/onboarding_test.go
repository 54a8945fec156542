package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

func testAccount() model.UserAccount {
	return model.UserAccount{Name: "Alice", Email: "a@x.com"}
}

func TestOnboarding_HappyPath(t *testing.T) {
	o := NewOnboarding()
	o.Draft.Profile.MonthlySalary = 7500
	o.Draft.Profile.FamilyMembers = 3

	for _, want := range []Step{StepFixedExpenses, StepOptionalExpenses, StepPreferences, StepReview} {
		require.NoError(t, o.Next())
		assert.Equal(t, want, o.Step())
	}

	committed, err := o.Complete(testAccount())
	require.NoError(t, err)
	assert.Equal(t, 7500.0, committed.MonthlySalary)
	assert.Equal(t, 3, committed.FamilyMembers)
	assert.Equal(t, "a@x.com", committed.Account.Email)
	require.NoError(t, committed.Validate())
}

func TestOnboarding_Step1Guard(t *testing.T) {
	o := NewOnboarding()
	o.Draft.Profile.FamilyMembers = 0 // cleared field

	err := o.Next()
	assert.True(t, common.IsValidation(err), "guard failure must be a validation error, got %v", err)
	assert.Equal(t, StepBasicInfo, o.Step(), "machine must stay on step 1")

	o.Draft.Profile.FamilyMembers = 2
	o.Draft.Profile.MonthlySalary = Unset()
	err = o.Next()
	assert.True(t, common.IsValidation(err))
	assert.Equal(t, StepBasicInfo, o.Step())
}

func TestOnboarding_Step2Guard(t *testing.T) {
	o := NewOnboarding()
	require.NoError(t, o.Next())

	o.Draft.Profile.FixedExpenses.Gas = Unset()
	err := o.Next()
	assert.True(t, common.IsValidation(err))
	assert.Equal(t, StepFixedExpenses, o.Step())

	o.Draft.Profile.FixedExpenses.Gas = 40
	require.NoError(t, o.Next())
	assert.Equal(t, StepOptionalExpenses, o.Step())
}

func TestOnboarding_BackNeverValidates(t *testing.T) {
	o := NewOnboarding()
	require.NoError(t, o.Next())

	// Invalidate step 1 fields, then go back: allowed without re-validation.
	o.Draft.Profile.MonthlySalary = Unset()
	o.Back()
	assert.Equal(t, StepBasicInfo, o.Step())

	// Back at the first step is a no-op.
	o.Back()
	assert.Equal(t, StepBasicInfo, o.Step())
}

func TestOnboarding_CompleteRequiresReview(t *testing.T) {
	o := NewOnboarding()
	_, err := o.Complete(testAccount())
	assert.True(t, common.IsValidation(err))
}

func TestOnboarding_OptionalFieldsNormalized(t *testing.T) {
	o := NewOnboarding()
	o.Draft.Profile.FixedExpenses.Internet = Unset()
	o.Draft.Profile.OptionalExpenses.Streaming = Unset()
	for o.Step() != StepReview {
		require.NoError(t, o.Next())
	}

	committed, err := o.Complete(testAccount())
	require.NoError(t, err)
	assert.Equal(t, 0.0, committed.FixedExpenses.Internet)
	assert.Equal(t, 0.0, committed.OptionalExpenses.Streaming)
}

func TestDraft_AddRemoveDebt(t *testing.T) {
	d := NewDraft()

	// Invalid commits silently no-op.
	assert.False(t, d.AddDebt(DebtInput{Description: "", MonthlyAmount: 100}))
	assert.False(t, d.AddDebt(DebtInput{Description: "loan", MonthlyAmount: 0}))
	assert.Empty(t, d.Profile.Debts)

	require.True(t, d.AddDebt(DebtInput{Description: "car loan", MonthlyAmount: 200, Priority: model.PriorityMedium}))
	require.True(t, d.AddDebt(DebtInput{Description: "phone", MonthlyAmount: 50, Priority: model.PriorityLow}))
	require.Len(t, d.Profile.Debts, 2)
	assert.NotEqual(t, d.Profile.Debts[0].ID, d.Profile.Debts[1].ID, "ids must be unique")

	d.RemoveDebt(d.Profile.Debts[0].ID)
	require.Len(t, d.Profile.Debts, 1)
	assert.Equal(t, "phone", d.Profile.Debts[0].Description)

	// Removing an unknown id succeeds and changes nothing.
	d.RemoveDebt("missing")
	assert.Len(t, d.Profile.Debts, 1)
}

func TestDraft_AddAnnualExpense(t *testing.T) {
	d := NewDraft()

	assert.False(t, d.AddAnnualExpense(AnnualExpenseInput{Description: "school", TotalAmount: -1}))
	require.True(t, d.AddAnnualExpense(AnnualExpenseInput{Description: "school fees", TotalAmount: 1200}))
	require.Len(t, d.Profile.AnnualExpenses, 1)
	assert.NotEmpty(t, d.Profile.AnnualExpenses[0].ID)
}

func TestDraft_MovePriority(t *testing.T) {
	d := NewDraft()
	original := append([]model.PriorityTag(nil), d.Profile.Preferences.MonthlyPriorities...)

	// Boundary moves are no-ops.
	assert.False(t, d.MovePriority(0, MoveUp))
	assert.False(t, d.MovePriority(len(original)-1, MoveDown))
	assert.Equal(t, original, d.Profile.Preferences.MonthlyPriorities)

	// Any sequence of moves keeps a permutation of the original set.
	moves := []struct {
		index int
		dir   MoveDirection
	}{
		{1, MoveUp}, {0, MoveDown}, {3, MoveDown}, {5, MoveUp}, {2, MoveUp}, {4, MoveDown},
	}
	for _, m := range moves {
		d.MovePriority(m.index, m.dir)
	}

	got := d.Profile.Preferences.MonthlyPriorities
	assert.ElementsMatch(t, original, got, "priorities must remain a permutation")
}

func TestEditor_SaveAndCancel(t *testing.T) {
	o := NewOnboarding()
	for o.Step() != StepReview {
		require.NoError(t, o.Next())
	}
	committed, err := o.Complete(testAccount())
	require.NoError(t, err)

	// Save without changes reproduces the committed profile exactly.
	e := NewEditor(committed)
	saved, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, committed, saved)

	// Cancel discards buffer mutations.
	e = NewEditor(committed)
	e.Buffer().MonthlySalary = 9999
	e.Buffer().FixedExpenses.Rent = 1
	e.Cancel()
	assert.Equal(t, committed.MonthlySalary, e.Buffer().MonthlySalary)
	assert.Equal(t, committed.FixedExpenses.Rent, e.Buffer().FixedExpenses.Rent)

	// Save validates the two required root fields only.
	e.Buffer().FamilyMembers = 0
	_, err = e.Save()
	assert.True(t, common.IsValidation(err))

	e.Buffer().FamilyMembers = 4
	e.Buffer().MonthlySalary = 8000
	saved, err = e.Save()
	require.NoError(t, err)
	assert.Equal(t, 8000.0, saved.MonthlySalary)
	assert.Equal(t, 4, saved.FamilyMembers)

	// The committed input is never mutated by buffer edits.
	assert.Equal(t, 6000.0, committed.MonthlySalary)
}
