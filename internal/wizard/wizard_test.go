package wizard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu     sync.Mutex
	calls  []domain.Draft
	id     string
	err    error
	block  chan struct{}
	called chan struct{}
}

func (s *recordingSaver) Save(ctx context.Context, d domain.Draft) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, d)
	s.mu.Unlock()
	if s.called != nil {
		close(s.called)
	}
	if s.block != nil {
		<-s.block
	}
	return s.id, s.err
}

func (s *recordingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func fillProfile(t *testing.T, c *wizard.Controller) {
	t.Helper()
	for name, value := range map[string]string{
		"fullName": "Jane Doe",
		"jobTitle": "Engineer",
		"company":  "Acme",
		"email":    "jane@acme.com",
		"phone":    "555",
	} {
		require.NoError(t, c.EditField(name, value))
	}
}

func advanceTo(t *testing.T, c *wizard.Controller, step wizard.Step) {
	t.Helper()
	for c.Step() < step {
		require.NoError(t, c.Next())
	}
}

func TestNew_DefaultDraft(t *testing.T) {
	c := wizard.New(nil)

	assert.Equal(t, wizard.StepBasics, c.Step())
	assert.Equal(t, wizard.StatusEditing, c.Status())
	assert.Equal(t, "My Business Card", c.Draft().Title)
	assert.Equal(t, domain.ThemeClassic, c.Draft().Theme)
	assert.Equal(t, domain.ProfileFields{}, c.Draft().Profile)
}

func TestNext_StepOneRequiresTrimmedTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		ok    bool
	}{
		{name: "default title", title: "My Business Card", ok: true},
		{name: "empty", title: "", ok: false},
		{name: "whitespace only", title: "   \t", ok: false},
		{name: "padded", title: "  Card  ", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := wizard.New(nil)
			require.NoError(t, c.EditField("title", tt.title))

			err := c.Next()
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, wizard.StepTheme, c.Step())
			} else {
				assert.ErrorIs(t, err, wizard.ErrStepIncomplete)
				assert.Equal(t, wizard.StepBasics, c.Step())
			}
		})
	}
}

func TestNext_StepTwoRequiresTheme(t *testing.T) {
	c := wizard.New(nil)
	require.NoError(t, c.Next())
	require.NoError(t, c.EditField("theme", ""))

	assert.ErrorIs(t, c.Next(), wizard.ErrStepIncomplete)

	require.NoError(t, c.EditField("theme", "bold"))
	require.NoError(t, c.Next())
	assert.Equal(t, wizard.StepProfile, c.Step())
}

func TestNext_StepThreeRequiresFiveProfileFields(t *testing.T) {
	fields := []string{"fullName", "jobTitle", "company", "email", "phone"}

	for _, missing := range fields {
		t.Run("missing "+missing, func(t *testing.T) {
			c := wizard.New(nil)
			advanceTo(t, c, wizard.StepProfile)
			fillProfile(t, c)
			require.NoError(t, c.EditField(missing, ""))

			assert.False(t, c.ValidFor(wizard.StepProfile))
			assert.ErrorIs(t, c.Next(), wizard.ErrStepIncomplete)
			assert.Len(t, c.MissingFields(), 1)
		})
	}

	t.Run("all present", func(t *testing.T) {
		c := wizard.New(nil)
		advanceTo(t, c, wizard.StepProfile)
		fillProfile(t, c)

		assert.Empty(t, c.MissingFields())
		require.NoError(t, c.Next())
		assert.Equal(t, wizard.StepReview, c.Step())
	})

	t.Run("optional fields do not matter", func(t *testing.T) {
		c := wizard.New(nil)
		advanceTo(t, c, wizard.StepProfile)
		fillProfile(t, c)
		require.NoError(t, c.EditField("website", ""))
		require.NoError(t, c.EditField("address", ""))
		assert.True(t, c.ValidFor(wizard.StepProfile))
	})

	t.Run("no format check and no trim", func(t *testing.T) {
		c := wizard.New(nil)
		advanceTo(t, c, wizard.StepProfile)
		fillProfile(t, c)
		require.NoError(t, c.EditField("email", "not-an-email"))
		require.NoError(t, c.EditField("phone", " "))
		assert.True(t, c.ValidFor(wizard.StepProfile))
	})
}

func TestMissingFields_ReportsStructPaths(t *testing.T) {
	c := wizard.New(nil)
	advanceTo(t, c, wizard.StepProfile)

	assert.ElementsMatch(t,
		[]string{"Profile.FullName", "Profile.Title", "Profile.Company", "Profile.Email", "Profile.Phone"},
		c.MissingFields())
}

func TestBoundaryNoOps(t *testing.T) {
	c := wizard.New(nil)
	c.Back()
	assert.Equal(t, wizard.StepBasics, c.Step())

	advanceTo(t, c, wizard.StepProfile)
	fillProfile(t, c)
	require.NoError(t, c.Next())
	require.Equal(t, wizard.StepReview, c.Step())

	require.NoError(t, c.Next())
	assert.Equal(t, wizard.StepReview, c.Step())
	assert.True(t, c.ValidFor(wizard.StepReview))
	assert.False(t, c.CanContinue())

	c.Back()
	assert.Equal(t, wizard.StepProfile, c.Step())
}

func TestEditField_UnknownName(t *testing.T) {
	c := wizard.New(nil)
	before := c.Draft()

	err := c.EditField("nickname", "x")

	assert.ErrorIs(t, err, wizard.ErrUnknownField)
	assert.Equal(t, before, c.Draft())
}

func TestEditField_AcceptsEveryListedField(t *testing.T) {
	c := wizard.New(nil)
	for _, name := range wizard.Fields {
		assert.NoError(t, c.EditField(name, "x"), name)
	}
	d := c.Draft()
	assert.Equal(t, "x", d.Title)
	assert.Equal(t, "x", d.Profile.Address)
}

func TestEditField_KeepsUnknownThemeValue(t *testing.T) {
	c := wizard.New(nil)
	require.NoError(t, c.EditField("theme", "neon"))
	assert.Equal(t, domain.Theme("neon"), c.Draft().Theme)
	assert.True(t, c.ValidFor(wizard.StepTheme))
}

func TestJaneDoeScenario(t *testing.T) {
	saver := &recordingSaver{id: "card-42"}
	c := wizard.New(saver)

	require.NoError(t, c.EditField("title", "My Card"))
	require.NoError(t, c.Next())
	require.NoError(t, c.EditField("theme", "modern"))
	require.NoError(t, c.Next())
	fillProfile(t, c)
	require.NoError(t, c.Next())
	require.Equal(t, wizard.StepReview, c.Step())

	rows := c.Review()
	values := map[string]string{}
	for _, r := range rows {
		values[r.Label] = r.Value
	}
	assert.Equal(t, map[string]string{
		"Card Title": "My Card",
		"Theme":      "Modern",
		"Full Name":  "Jane Doe",
		"Job Title":  "Engineer",
		"Company":    "Acme",
		"Email":      "jane@acme.com",
		"Phone":      "555",
	}, values)

	id, err := c.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "card-42", id)
	require.Equal(t, 1, saver.count())
	assert.Equal(t, domain.Draft{
		Title: "My Card",
		Theme: domain.ThemeModern,
		Profile: domain.ProfileFields{
			FullName: "Jane Doe",
			Title:    "Engineer",
			Company:  "Acme",
			Email:    "jane@acme.com",
			Phone:    "555",
		},
	}, saver.calls[0])
	assert.Equal(t, wizard.StatusSaved, c.Status())
	assert.Equal(t, "card-42", c.Snapshot().CardID)

	again, err := c.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "card-42", again)
	assert.Equal(t, 1, saver.count(), "a saved draft is not saved twice")
}

func TestReview_OptionalRowsOnlyWhenProvided(t *testing.T) {
	c := wizard.New(nil)
	fillProfile(t, c)
	assert.Len(t, c.Review(), 7)

	require.NoError(t, c.EditField("website", "jane.dev"))
	require.NoError(t, c.EditField("address", "1 Main St"))
	rows := c.Review()
	require.Len(t, rows, 9)
	assert.Equal(t, "Website", rows[7].Label)
	assert.Equal(t, "Address", rows[8].Label)
}

func TestSave_OnlyFromReview(t *testing.T) {
	saver := &recordingSaver{id: "x"}
	c := wizard.New(saver)

	_, err := c.Save(context.Background())

	assert.ErrorIs(t, err, wizard.ErrNotAtReview)
	assert.Zero(t, saver.count())
}

func TestSave_FailureIsVisible(t *testing.T) {
	boom := errors.New("storage offline")
	saver := &recordingSaver{err: boom}
	c := wizard.New(saver)
	advanceTo(t, c, wizard.StepProfile)
	fillProfile(t, c)
	require.NoError(t, c.Next())

	_, err := c.Save(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.Equal(t, wizard.StatusFailed, c.Status())
	assert.ErrorIs(t, c.Err(), boom)
	assert.Equal(t, "storage offline", c.Snapshot().Err)
	assert.Equal(t, wizard.StepReview, c.Step())

	require.NoError(t, c.EditField("phone", "556"))
	assert.Equal(t, wizard.StatusEditing, c.Status())
	assert.NoError(t, c.Err())
}

func TestSave_ConcurrentSaveRefused(t *testing.T) {
	saver := &recordingSaver{id: "x", block: make(chan struct{}), called: make(chan struct{})}
	c := wizard.New(saver)
	advanceTo(t, c, wizard.StepProfile)
	fillProfile(t, c)
	require.NoError(t, c.Next())

	done := make(chan error, 1)
	go func() {
		_, err := c.Save(context.Background())
		done <- err
	}()

	select {
	case <-saver.called:
	case <-time.After(2 * time.Second):
		t.Fatal("saver was not called")
	}
	assert.Equal(t, wizard.StatusSaving, c.Status())

	_, err := c.Save(context.Background())
	assert.ErrorIs(t, err, wizard.ErrSaveInProgress)

	close(saver.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, saver.count())
	assert.Equal(t, wizard.StatusSaved, c.Status())
}

func TestSave_WithoutSaver(t *testing.T) {
	c := wizard.New(nil)
	advanceTo(t, c, wizard.StepProfile)
	fillProfile(t, c)
	require.NoError(t, c.Next())

	_, err := c.Save(context.Background())
	assert.ErrorIs(t, err, wizard.ErrNoSaver)
	assert.Equal(t, wizard.StatusEditing, c.Status())
}

func TestFromCard(t *testing.T) {
	card := domain.Card{
		ID:      "7",
		Title:   "Client Meeting Card",
		Theme:   domain.ThemeElegant,
		Profile: domain.ProfileFields{FullName: "Alex Johnson"},
	}
	c := wizard.FromCard(card, nil)

	assert.Equal(t, wizard.StepBasics, c.Step())
	assert.Equal(t, card.Draft(), c.Draft())
	assert.Equal(t, "7", c.Snapshot().CardID)
}

func TestRestore(t *testing.T) {
	t.Run("clamps step", func(t *testing.T) {
		assert.Equal(t, wizard.StepReview, wizard.Restore(wizard.State{Step: 9}, nil).Step())
		assert.Equal(t, wizard.StepBasics, wizard.Restore(wizard.State{Step: 0}, nil).Step())
	})

	t.Run("interrupted save becomes failure", func(t *testing.T) {
		c := wizard.Restore(wizard.State{Step: wizard.StepReview, Status: wizard.StatusSaving}, nil)
		assert.Equal(t, wizard.StatusFailed, c.Status())
		assert.Error(t, c.Err())
	})

	t.Run("round trips a snapshot", func(t *testing.T) {
		orig := wizard.New(nil)
		require.NoError(t, orig.EditField("company", "Acme"))
		require.NoError(t, orig.Next())

		c := wizard.Restore(orig.Snapshot(), nil)
		assert.Equal(t, orig.Snapshot(), c.Snapshot())
	})
}

func TestSteps(t *testing.T) {
	c := wizard.New(nil)
	require.NoError(t, c.Next())

	steps := c.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, "Basic Information", steps[0].Label)
	assert.True(t, steps[0].Done)
	assert.True(t, steps[1].Current)
	assert.Equal(t, "Select Theme", steps[1].Label)
	assert.Equal(t, "Professional Information", steps[2].Label)
	assert.Equal(t, "Review & Finalize", steps[3].Label)
	assert.False(t, steps[3].Done)
}
