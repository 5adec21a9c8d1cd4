// Package survey implements the three-step onboarding wizard. All state is
// held in memory until the final step submits; abandoning the wizard
// discards everything.
package survey

import (
	"errors"
	"strings"
	"time"

	"panpath-guardian/types"
)

// Step is the wizard's current position.
type Step int

const (
	StepLocation Step = 1
	StepHelpType Step = 2
	StepFeatures Step = 3
)

// SubmitFunc receives the accumulated submission when the wizard completes.
type SubmitFunc func(types.SurveySubmission) error

// Wizard is a strictly linear three-step flow: location, help-type
// multi-select, feature multi-select.
type Wizard struct {
	step     Step
	location string
	help     []string
	features []string
	submit   SubmitFunc
	now      func() time.Time
}

// NewWizard starts a wizard at step 1.
func NewWizard(submit SubmitFunc) *Wizard {
	return &Wizard{step: StepLocation, submit: submit, now: time.Now}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// SetLocation records the step-1 answer.
func (w *Wizard) SetLocation(location string) {
	w.location = strings.TrimSpace(location)
}

// ToggleHelpType adds or removes a help-type option.
func (w *Wizard) ToggleHelpType(option string) {
	w.help = toggle(w.help, option)
}

// ToggleFeature adds or removes a feature option.
func (w *Wizard) ToggleFeature(option string) {
	w.features = toggle(w.features, option)
}

func toggle(selected []string, option string) []string {
	for i, s := range selected {
		if s == option {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			return append(out, selected[i+1:]...)
		}
	}
	return append(selected, option)
}

// Next advances one step. At step 3 it submits instead, exactly once per
// call, and reports whether a submission happened.
func (w *Wizard) Next() (bool, error) {
	if w.step < StepFeatures {
		w.step++
		return false, nil
	}

	if w.submit == nil {
		return false, errors.New("no submit target configured")
	}
	err := w.submit(types.SurveySubmission{
		Location:    w.location,
		HelpTypes:   append([]string(nil), w.help...),
		Features:    append([]string(nil), w.features...),
		SubmittedAt: w.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Previous steps back. A no-op at step 1.
func (w *Wizard) Previous() {
	if w.step > StepLocation {
		w.step--
	}
}
