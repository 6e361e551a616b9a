package wizard

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nexcard/nexcard/internal/domain"
)

// Step is a wizard position, 1 through 4.
type Step int

const (
	StepBasics Step = iota + 1
	StepTheme
	StepProfile
	StepReview
)

const (
	firstStep = StepBasics
	lastStep  = StepReview
)

var stepLabels = map[Step]string{
	StepBasics:  "Basic Information",
	StepTheme:   "Select Theme",
	StepProfile: "Professional Information",
	StepReview:  "Review & Finalize",
}

// Label returns the heading shown for the step.
func (s Step) Label() string {
	return stepLabels[s]
}

// Valid reports whether s is inside the wizard.
func (s Step) Valid() bool {
	return s >= firstStep && s <= lastStep
}

// requiredFields is the single predicate table for the wizard. Each step
// lists the Draft fields whose validate tags must pass before the user may
// move past it. The review step has no requirements.
var requiredFields = map[Step][]string{
	StepBasics:  {"Title"},
	StepTheme:   {"Theme"},
	StepProfile: {"Profile.FullName", "Profile.Title", "Profile.Company", "Profile.Email", "Profile.Phone"},
	StepReview:  nil,
}

// validate is shared by every controller; it caches struct metadata.
var validate = validator.New()

func init() {
	_ = validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validFor evaluates the predicate table for step s against d.
func validFor(s Step, d domain.Draft) bool {
	return missingFields(s, d) == nil
}

// missingFields returns the struct field names that block step s.
func missingFields(s Step, d domain.Draft) []string {
	fields := requiredFields[s]
	if len(fields) == 0 {
		return nil
	}
	err := validate.StructPartial(d, fields...)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, strings.TrimPrefix(fe.StructNamespace(), "Draft."))
	}
	return missing
}
