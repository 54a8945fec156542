package profile

import (
	"github.com/modaber/modaber/internal/model"
)

// Editor backs the post-onboarding profile screen. Entering edit mode copies
// the committed profile into a scratch buffer; all operations mutate only
// the buffer. Save validates the two required root fields and returns the
// replacement profile; Cancel reverts the buffer to the committed state
// without validation.
type Editor struct {
	Draft     Draft
	committed model.UserProfile
}

// NewEditor creates an editor over the committed profile.
func NewEditor(committed model.UserProfile) *Editor {
	return &Editor{
		Draft:     Draft{Profile: committed.Clone()},
		committed: committed,
	}
}

// Buffer exposes the scratch profile for field updates and rendering.
func (e *Editor) Buffer() *model.UserProfile {
	return &e.Draft.Profile
}

// Save validates the required root fields and, on success, returns the
// profile that atomically replaces the committed one.
func (e *Editor) Save() (model.UserProfile, error) {
	if err := requireBasicInfo(&e.Draft.Profile); err != nil {
		return model.UserProfile{}, err
	}

	e.Draft.normalize()
	saved := e.Draft.Profile.Clone()
	if err := saved.Validate(); err != nil {
		return model.UserProfile{}, err
	}
	e.committed = saved
	return saved, nil
}

// Cancel discards the scratch buffer, reverting to the last committed
// profile.
func (e *Editor) Cancel() {
	e.Draft = Draft{Profile: e.committed.Clone()}
}
