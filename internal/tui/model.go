// Package tui is the terminal rendition of the card wizard. It drives the
// same wizard.Controller as the web flow and draws the live preview with
// lipgloss.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nexcard/nexcard/internal/preview"
	"github.com/nexcard/nexcard/internal/theme"
	"github.com/nexcard/nexcard/internal/wizard"
)

const (
	incompleteNotice = "Please fill in all required fields before continuing."
	saveFailedNotice = "Failed to save the business card. Please try again."
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F46E5"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
)

type saveDoneMsg struct {
	id  string
	err error
}

// field is one text input bound to a wizard field name.
type field struct {
	step     wizard.Step
	name     string
	label    string
	required bool
	input    textinput.Model
}

// Model is the bubbletea model of the wizard.
type Model struct {
	ctx     context.Context
	ctrl    *wizard.Controller
	fields  []field
	focus   int
	themes  []theme.Definition
	cursor  int
	notice  string
	saving  bool
	savedID string
	aborted bool
}

// New creates a model for ctrl. ctx bounds the save call.
func New(ctx context.Context, ctrl *wizard.Controller) Model {
	d := ctrl.Draft()
	values := map[string]string{
		"title":    d.Title,
		"fullName": d.Profile.FullName,
		"jobTitle": d.Profile.Title,
		"company":  d.Profile.Company,
		"email":    d.Profile.Email,
		"phone":    d.Profile.Phone,
		"website":  d.Profile.Website,
		"address":  d.Profile.Address,
	}

	specs := []struct {
		step        wizard.Step
		name, label string
		placeholder string
		required    bool
	}{
		{wizard.StepBasics, "title", "Card Title", "e.g. Work Card", true},
		{wizard.StepProfile, "fullName", "Full Name", preview.PlaceholderName, true},
		{wizard.StepProfile, "jobTitle", "Job Title", preview.PlaceholderTitle, true},
		{wizard.StepProfile, "company", "Company", preview.PlaceholderCompany, true},
		{wizard.StepProfile, "email", "Email", preview.PlaceholderEmail, true},
		{wizard.StepProfile, "phone", "Phone", preview.PlaceholderPhone, true},
		{wizard.StepProfile, "website", "Website", preview.PlaceholderWebsite, false},
		{wizard.StepProfile, "address", "Address", preview.PlaceholderAddress, false},
	}

	m := Model{ctx: ctx, ctrl: ctrl, themes: theme.Default().All()}
	for _, s := range specs {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = s.placeholder
		in.CharLimit = 120
		in.Width = 36
		in.SetValue(values[s.name])
		m.fields = append(m.fields, field{step: s.step, name: s.name, label: s.label, required: s.required, input: in})
	}
	m.cursor = max(0, slices.IndexFunc(m.themes, func(def theme.Definition) bool { return def.ID == d.Theme }))
	m.focusStep()
	return m
}

// SavedID is the id of the saved card, empty when the wizard was left
// without saving.
func (m Model) SavedID() string {
	return m.savedID
}

// Aborted reports whether the user quit before saving.
func (m Model) Aborted() bool {
	return m.aborted
}

// stepFields returns the indexes into m.fields of the current step.
func (m Model) stepFields() []int {
	step := m.ctrl.Step()
	var idx []int
	for i, f := range m.fields {
		if f.step == step {
			idx = append(idx, i)
		}
	}
	return idx
}

// focusStep focuses the m.focus-th input of the current step.
func (m *Model) focusStep() tea.Cmd {
	idx := m.stepFields()
	if len(idx) == 0 {
		m.focus = 0
	} else {
		m.focus = (m.focus%len(idx) + len(idx)) % len(idx)
	}
	var cmd tea.Cmd
	for n, i := range idx {
		if n == m.focus {
			cmd = m.fields[i].input.Focus()
			continue
		}
		m.fields[i].input.Blur()
	}
	return cmd
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = saveFailedNotice
			return m, nil
		}
		m.savedID = msg.id
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	step := m.ctrl.Step()

	switch msg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		return m.advance()
	case "ctrl+b":
		m.ctrl.Back()
		m.notice = ""
		m.focus = 0
		return m, m.focusStep()
	case "tab", "down":
		if step == wizard.StepTheme {
			return m.moveTheme(1), nil
		}
		m.focus++
		return m, m.focusStep()
	case "shift+tab", "up":
		if step == wizard.StepTheme {
			return m.moveTheme(-1), nil
		}
		m.focus--
		return m, m.focusStep()
	}

	idx := m.stepFields()
	if len(idx) == 0 {
		return m, nil
	}
	f := &m.fields[idx[m.focus]]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if err := m.ctrl.EditField(f.name, f.input.Value()); err != nil {
		m.notice = err.Error()
	} else if m.notice == saveFailedNotice || m.ctrl.CanContinue() {
		m.notice = ""
	}
	return m, cmd
}

func (m Model) moveTheme(delta int) Model {
	if len(m.themes) == 0 {
		return m
	}
	m.cursor = (m.cursor + delta + len(m.themes)) % len(m.themes)
	_ = m.ctrl.EditField("theme", string(m.themes[m.cursor].ID))
	return m
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.ctrl.Step() == wizard.StepReview {
		m.saving = true
		m.notice = ""
		ctrl, ctx := m.ctrl, m.ctx
		return m, func() tea.Msg {
			id, err := ctrl.Save(ctx)
			return saveDoneMsg{id: id, err: err}
		}
	}
	if err := m.ctrl.Next(); err != nil {
		if errors.Is(err, wizard.ErrStepIncomplete) {
			m.notice = incompleteNotice
		} else {
			m.notice = err.Error()
		}
		return m, nil
	}
	m.notice = ""
	m.focus = 0
	return m, m.focusStep()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.savedID != "" {
		return doneStyle.Render(fmt.Sprintf("Business card saved (id %s).", m.savedID)) + "\n"
	}

	var b strings.Builder
	step := m.ctrl.Step()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), len(m.ctrl.Steps()), step.Label())))
	b.WriteString("\n\n")

	var body string
	switch step {
	case wizard.StepTheme:
		body = m.themeView()
	case wizard.StepReview:
		body = m.reviewView()
	default:
		body = m.fieldsView()
	}

	d := m.ctrl.Draft()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(44).Render(body),
		Card(preview.Render(d.Profile, d.Theme)),
	))
	b.WriteString("\n")

	if m.saving {
		b.WriteString(labelStyle.Render("Saving...") + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString(helpStyle.Render(m.help()) + "\n")
	return b.String()
}

func (m Model) help() string {
	switch m.ctrl.Step() {
	case wizard.StepBasics:
		return "enter: continue · esc: quit"
	case wizard.StepTheme:
		return "up/down: choose · enter: continue · ctrl+b: back · esc: quit"
	case wizard.StepReview:
		return "enter: save card · ctrl+b: back · esc: quit"
	default:
		return "tab: next field · enter: continue · ctrl+b: back · esc: quit"
	}
}

func (m Model) fieldsView() string {
	var b strings.Builder
	for _, i := range m.stepFields() {
		f := m.fields[i]
		label := f.label
		if f.required {
			label += " *"
		}
		b.WriteString(labelStyle.Render(label) + "\n")
		b.WriteString(f.input.View() + "\n\n")
	}
	return b.String()
}

func (m Model) themeView() string {
	var b strings.Builder
	for i, def := range m.themes {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(def.Terminal.Accent)).Render("■")
		fmt.Fprintf(&b, "%s%s %s\n", marker, swatch, def.Name)
		b.WriteString(labelStyle.Render("    "+def.Description) + "\n")
	}
	return b.String()
}

func (m Model) reviewView() string {
	var b strings.Builder
	section := ""
	for _, row := range m.ctrl.Review() {
		if row.Section != section {
			section = row.Section
			b.WriteString(titleStyle.Render(section) + "\n")
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(row.Label+":"), row.Value)
	}
	return b.String()
}

// Run shows the wizard on the terminal and returns the saved card id. An
// empty id with a nil error means the user quit.
func Run(ctx context.Context, ctrl *wizard.Controller, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(New(ctx, ctrl), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("run wizard: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("run wizard: unexpected model %T", final)
	}
	return m.SavedID(), nil
}
