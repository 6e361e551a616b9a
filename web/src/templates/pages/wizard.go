package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/preview"
	"github.com/nexcard/nexcard/internal/theme"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/nexcard/nexcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ContinueID is the wizard's Continue button, re-rendered out of band on
// every live preview so it enables as soon as the step is complete.
const ContinueID = "wizard-continue"

// WizardView is the wizard page's display model.
type WizardView struct {
	Editing     bool
	Steps       []wizard.StepInfo
	Step        wizard.Step
	Draft       domain.Draft
	CanContinue bool
	Status      wizard.Status
	Error       string
	Review      []wizard.ReviewRow
	Preview     preview.VisualCard
}

// NewWizardView reads the display model off a controller.
func NewWizardView(c *wizard.Controller, editing bool) WizardView {
	d := c.Draft()
	return WizardView{
		Editing:     editing,
		Steps:       c.Steps(),
		Step:        c.Step(),
		Draft:       d,
		CanContinue: c.CanContinue(),
		Status:      c.Status(),
		Error:       errText(c.Err()),
		Review:      c.Review(),
		Preview:     preview.Render(d.Profile, d.Theme),
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

var livePreview = g.Group{
	hx.Post("/app/wizard/preview"),
	hx.Trigger("input changed delay:200ms, change"),
	hx.Target("#" + components.PreviewID),
	hx.Swap("outerHTML"),
	hx.Include("closest form"),
}

func textField(label, name, value, placeholder string, required bool) g.Node {
	if required {
		label += " *"
	}
	return h.Div(
		h.Label(h.For(name), h.Class("block text-sm font-medium text-gray-700"), g.Text(label)),
		h.Input(
			h.ID(name), h.Name(name), h.Type("text"), h.Value(value),
			h.Placeholder(placeholder), h.Class("form-input"), livePreview,
		),
	)
}

func progress(steps []wizard.StepInfo) g.Node {
	return h.Ol(
		h.Class("flex gap-4 mb-8 text-sm"),
		g.Map(steps, func(s wizard.StepInfo) g.Node {
			cls := "flex items-center gap-2 text-gray-400"
			marker := g.Textf("%d", int(s.Step))
			switch {
			case s.Current:
				cls = "flex items-center gap-2 text-indigo-700 font-medium"
			case s.Done:
				cls = "flex items-center gap-2 text-green-700"
				marker = g.Text("✓")
			}
			return h.Li(
				h.Class(cls),
				g.If(s.Current, h.Aria("current", "step")),
				h.Span(h.Class("h-6 w-6 rounded-full border flex items-center justify-center"), marker),
				g.Text(s.Label),
			)
		}),
	)
}

func stepBasics(d domain.Draft) g.Node {
	return textField("Card Title", "title", d.Title, "My Business Card", true)
}

func stepTheme(d domain.Draft) g.Node {
	return h.Div(
		h.Class("grid grid-cols-2 md:grid-cols-3 gap-4"),
		g.Map(theme.Default().All(), func(def theme.Definition) g.Node {
			return h.Label(
				h.Class("cursor-pointer rounded-lg border p-4 has-[:checked]:ring-2 has-[:checked]:ring-indigo-600"),
				h.Input(
					h.Type("radio"), h.Name("theme"), h.Value(string(def.ID)),
					g.If(def.ID == d.Theme, h.Checked()), h.Class("sr-only"), livePreview,
				),
				components.ColorStrip(def.ID),
				h.P(h.Class("mt-2 font-medium"), g.Text(def.Name)),
				h.P(h.Class("text-xs text-gray-500"), g.Text(def.Description)),
			)
		}),
	)
}

func stepProfile(d domain.Draft) g.Node {
	p := d.Profile
	return h.Div(
		h.Class("grid md:grid-cols-2 gap-4"),
		textField("Full Name", "fullName", p.FullName, "John Doe", true),
		textField("Job Title", "jobTitle", p.Title, "Marketing Director", true),
		textField("Company", "company", p.Company, "Acme Inc.", true),
		textField("Email Address", "email", p.Email, "john@example.com", true),
		textField("Phone Number", "phone", p.Phone, "+1 (555) 123-4567", true),
		textField("Website", "website", p.Website, "https://example.com", false),
		h.Div(h.Class("md:col-span-2"), textField("Address", "address", p.Address, "123 Business St, City, State, ZIP", false)),
	)
}

func stepReview(v WizardView) g.Node {
	sections := []string{}
	bySection := map[string][]wizard.ReviewRow{}
	for _, r := range v.Review {
		if _, ok := bySection[r.Section]; !ok {
			sections = append(sections, r.Section)
		}
		bySection[r.Section] = append(bySection[r.Section], r)
	}

	return h.Div(
		h.Class("space-y-6"),
		g.If(v.Status == wizard.StatusFailed, h.Div(
			h.Role("alert"), h.Class("flash flash-error"),
			g.Text("Failed to save the business card. Please try again."),
			g.If(v.Error != "", h.P(h.Class("mt-1 text-xs"), g.Text(v.Error))),
		)),
		g.Map(sections, func(s string) g.Node {
			return h.Div(
				h.H3(h.Class("font-semibold mb-2"), g.Text(s)),
				h.Dl(
					h.Class("grid grid-cols-3 gap-2 text-sm"),
					g.Map(bySection[s], func(r wizard.ReviewRow) g.Node {
						return g.Group{
							h.Dt(h.Class("text-gray-500"), g.Text(r.Label+":")),
							h.Dd(h.Class("col-span-2"), g.Text(r.Value)),
						}
					}),
				),
			)
		}),
	)
}

// ContinueButton submits the current step. It is disabled until the step's
// required fields are filled.
func ContinueButton(enabled bool, swap bool) g.Node {
	return h.Button(
		h.ID(ContinueID), h.Type("submit"),
		g.Attr("formaction", "/app/wizard/next"), h.Class("btn-primary"),
		g.If(!enabled, h.Disabled()),
		g.If(swap, hx.SwapOOB("true")),
		g.Text("Continue"),
	)
}

// WizardPreview is the live preview response: the card and the Continue
// button's new state.
func WizardPreview(v WizardView) g.Node {
	return g.Group{
		components.CardPreview(v.Preview),
		g.If(v.Step != wizard.StepReview, ContinueButton(v.CanContinue, true)),
	}
}

// Wizard is the four-step card creation page.
func Wizard(v WizardView) g.Node {
	heading := "Create Your Digital Business Card"
	if v.Editing {
		heading = "Edit Your Digital Business Card"
	}

	var body g.Node
	switch v.Step {
	case wizard.StepBasics:
		body = stepBasics(v.Draft)
	case wizard.StepTheme:
		body = stepTheme(v.Draft)
	case wizard.StepProfile:
		body = stepProfile(v.Draft)
	default:
		body = stepReview(v)
	}

	saving := v.Status == wizard.StatusSaving

	return g.Group{
		h.H1(h.Class("text-2xl font-bold mb-6"), g.Text(heading)),
		progress(v.Steps),
		h.Div(
			h.Class("grid lg:grid-cols-2 gap-8"),
			h.Form(
				h.Method("post"), h.Action("/app/wizard/next"),
				h.Class("bg-white rounded-lg shadow p-6 space-y-6"),
				h.H2(h.Class("text-xl font-semibold"), g.Text(v.Step.Label())),
				body,
				h.Div(
					h.Class("flex justify-between pt-4 border-t"),
					h.Button(
						h.Type("submit"), g.Attr("formaction", "/app/wizard/back"), g.Attr("formnovalidate"),
						h.Class("btn-secondary"), g.If(v.Step == wizard.StepBasics, h.Disabled()),
						g.Text("Back"),
					),
					g.If(v.Step != wizard.StepReview, ContinueButton(v.CanContinue, false)),
					g.If(v.Step == wizard.StepReview, h.Button(
						h.Type("submit"), g.Attr("formaction", "/app/wizard/save"), h.Class("btn-primary"),
						g.If(saving, h.Disabled()),
						g.If(saving, g.Text("Saving...")),
						g.If(!saving, g.Text("Save Card")),
					)),
				),
			),
			h.Div(
				h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Preview")),
				components.CardPreview(v.Preview),
			),
		),
	}
}
