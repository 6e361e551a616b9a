// Package wizard implements the four step card creation flow: basic
// information, theme, professional details and a final review. A Controller
// owns one in-progress Draft and only lets the user move forward once the
// current step's required fields are filled in.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
)

// DefaultTitle is the card title a fresh draft starts with.
const DefaultTitle = "My Business Card"

var (
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")
	ErrNotAtReview    = errors.New("wizard: save is only possible from the review step")
	ErrSaveInProgress = errors.New("wizard: save already in progress")
	ErrUnknownField   = errors.New("wizard: unknown field")
	ErrNoSaver        = errors.New("wizard: no saver configured")
)

// Status is the save lifecycle of a draft.
type Status string

const (
	StatusEditing Status = "editing"
	StatusSaving  Status = "saving"
	StatusSaved   Status = "saved"
	StatusFailed  Status = "failed"
)

// Saver is the save collaborator the controller hands the finished draft to.
type Saver = domain.CardSaver

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, draft domain.Draft) (string, error)

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, draft domain.Draft) (string, error) {
	return f(ctx, draft)
}

// State is the serializable snapshot of a controller. The web layer keeps
// it in a Store between requests.
type State struct {
	Step   Step         `json:"step"`
	Draft  domain.Draft `json:"draft"`
	Status Status       `json:"status"`
	// CardID is the card being edited, or the id returned by a successful save.
	CardID string `json:"cardId,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Controller drives a single draft through the wizard. It is safe for
// concurrent use.
type Controller struct {
	mu      sync.Mutex
	state   State
	saver   Saver
	lastErr error
}

// NewDraft returns the draft a new card starts from.
func NewDraft() domain.Draft {
	return domain.Draft{Title: DefaultTitle, Theme: domain.ThemeClassic}
}

// New returns a controller at step 1 holding the default draft.
func New(saver Saver) *Controller {
	return Restore(State{Step: firstStep, Draft: NewDraft(), Status: StatusEditing}, saver)
}

// FromCard returns a controller pre-filled with an existing card for editing.
func FromCard(card domain.Card, saver Saver) *Controller {
	return Restore(State{
		Step:   firstStep,
		Draft:  card.Draft(),
		Status: StatusEditing,
		CardID: card.ID,
	}, saver)
}

// Restore rebuilds a controller from a snapshot. Out of range steps are
// clamped and an interrupted save is reported as failed.
func Restore(s State, saver Saver) *Controller {
	if s.Step < firstStep {
		s.Step = firstStep
	}
	if s.Step > lastStep {
		s.Step = lastStep
	}
	switch s.Status {
	case StatusEditing, StatusSaved, StatusFailed:
	case StatusSaving:
		s.Status = StatusFailed
		s.Err = "save was interrupted"
	default:
		s.Status = StatusEditing
	}
	return &Controller{state: s, saver: saver}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Step returns the current step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Step
}

// Draft returns a copy of the draft.
func (c *Controller) Draft() domain.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Draft
}

// Status returns the save status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status
}

// Err returns the error of the last failed save, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status != StatusFailed {
		return nil
	}
	if c.lastErr != nil {
		return c.lastErr
	}
	return errors.New(c.state.Err)
}

// Fields lists the form names EditField accepts, in form order.
var Fields = []string{"title", "theme", "fullName", "jobTitle", "company", "email", "phone", "website", "address"}

// EditField sets one draft field by its form name. It works at any step and
// returns the user to the editing status after a failed save.
func (c *Controller) EditField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := &c.state.Draft
	switch name {
	case "title":
		d.Title = value
	case "theme":
		d.Theme = domain.Theme(value)
	case "fullName":
		d.Profile.FullName = value
	case "jobTitle", "profileTitle":
		d.Profile.Title = value
	case "company":
		d.Profile.Company = value
	case "email":
		d.Profile.Email = value
	case "phone":
		d.Profile.Phone = value
	case "website":
		d.Profile.Website = value
	case "address":
		d.Profile.Address = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if c.state.Status == StatusFailed {
		c.state.Status = StatusEditing
		c.state.Err = ""
		c.lastErr = nil
	}
	return nil
}

// ValidFor reports whether the draft satisfies step s's requirements.
func (c *Controller) ValidFor(s Step) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validFor(s, c.state.Draft)
}

// CanContinue reports whether Next would advance from the current step.
func (c *Controller) CanContinue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Step < lastStep && validFor(c.state.Step, c.state.Draft)
}

// MissingFields lists the draft fields blocking the current step, using
// Draft struct paths such as "Profile.Email".
func (c *Controller) MissingFields() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return missingFields(c.state.Step, c.state.Draft)
}

// Next advances one step. It is a no-op on the review step and returns
// ErrStepIncomplete when the current step's fields are not filled in.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Step >= lastStep {
		return nil
	}
	if !validFor(c.state.Step, c.state.Draft) {
		return ErrStepIncomplete
	}
	c.state.Step++
	return nil
}

// Back returns to the previous step. It is a no-op on step 1.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Step > firstStep {
		c.state.Step--
	}
}

// Save hands the draft to the saver. The lock is not held while the saver
// runs, so the Saving status is observable and a second Save is refused.
// A failed save leaves the controller in StatusFailed with the error kept.
func (c *Controller) Save(ctx context.Context) (string, error) {
	c.mu.Lock()
	switch {
	case c.state.Step != lastStep:
		c.mu.Unlock()
		return "", ErrNotAtReview
	case c.state.Status == StatusSaving:
		c.mu.Unlock()
		return "", ErrSaveInProgress
	case c.state.Status == StatusSaved:
		id := c.state.CardID
		c.mu.Unlock()
		return id, nil
	case c.saver == nil:
		c.mu.Unlock()
		return "", ErrNoSaver
	}
	c.state.Status = StatusSaving
	c.state.Err = ""
	draft := c.state.Draft
	saver := c.saver
	c.mu.Unlock()

	id, err := saver.Save(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state.Status = StatusFailed
		c.state.Err = err.Error()
		c.lastErr = err
		return "", fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}
	c.state.Status = StatusSaved
	c.state.CardID = id
	c.lastErr = nil
	return id, nil
}

// ReviewRow is one line of the review step summary.
type ReviewRow struct {
	Section string
	Label   string
	Value   string
}

// Review returns the summary shown on the final step. Website and address
// rows only appear when they were provided.
func (c *Controller) Review() []ReviewRow {
	c.mu.Lock()
	d := c.state.Draft
	c.mu.Unlock()

	const (
		basics  = "Card Details"
		profile = "Contact Information"
	)
	rows := []ReviewRow{
		{Section: basics, Label: "Card Title", Value: d.Title},
		{Section: basics, Label: "Theme", Value: theme.DisplayName(d.Theme)},
		{Section: profile, Label: "Full Name", Value: d.Profile.FullName},
		{Section: profile, Label: "Job Title", Value: d.Profile.Title},
		{Section: profile, Label: "Company", Value: d.Profile.Company},
		{Section: profile, Label: "Email", Value: d.Profile.Email},
		{Section: profile, Label: "Phone", Value: d.Profile.Phone},
	}
	if d.Profile.Website != "" {
		rows = append(rows, ReviewRow{Section: profile, Label: "Website", Value: d.Profile.Website})
	}
	if d.Profile.Address != "" {
		rows = append(rows, ReviewRow{Section: profile, Label: "Address", Value: d.Profile.Address})
	}
	return rows
}

// StepInfo describes one entry of the progress list.
type StepInfo struct {
	Step    Step
	Label   string
	Done    bool
	Current bool
}

// Steps returns the progress list for the current position.
func (c *Controller) Steps() []StepInfo {
	c.mu.Lock()
	current := c.state.Step
	c.mu.Unlock()

	steps := make([]StepInfo, 0, int(lastStep))
	for s := firstStep; s <= lastStep; s++ {
		steps = append(steps, StepInfo{
			Step:    s,
			Label:   s.Label(),
			Done:    s < current,
			Current: s == current,
		})
	}
	return steps
}
