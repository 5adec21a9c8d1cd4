package survey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panpath-guardian/types"
)

func TestLinearProgression(t *testing.T) {
	w := NewWizard(func(types.SurveySubmission) error { return nil })
	assert.Equal(t, StepLocation, w.Step())

	submitted, err := w.Next()
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.Equal(t, StepHelpType, w.Step())

	submitted, err = w.Next()
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.Equal(t, StepFeatures, w.Step())
}

func TestPreviousAtStepOneIsNoOp(t *testing.T) {
	w := NewWizard(nil)
	w.Previous()
	assert.Equal(t, StepLocation, w.Step())

	w.Next()
	w.Previous()
	assert.Equal(t, StepLocation, w.Step())
}

func TestNextAtFinalStepSubmitsExactlyOncePerCall(t *testing.T) {
	var submissions int
	w := NewWizard(func(types.SurveySubmission) error {
		submissions++
		return nil
	})

	w.SetLocation("Lagos, Nigeria")
	w.Next()
	w.ToggleHelpType("volunteer")
	w.Next()
	w.ToggleFeature("alerts")

	submitted, err := w.Next()
	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, 1, submissions)
	assert.Equal(t, StepFeatures, w.Step())
}

func TestSubmissionCarriesAccumulatedSelections(t *testing.T) {
	var got types.SurveySubmission
	w := NewWizard(func(s types.SurveySubmission) error {
		got = s
		return nil
	})

	w.SetLocation("  Mumbai, India ")
	w.ToggleHelpType("donate")
	w.ToggleHelpType("volunteer")
	w.ToggleHelpType("donate") // toggled off again
	w.ToggleFeature("map")
	w.Next()
	w.Next()

	_, err := w.Next()
	require.NoError(t, err)

	assert.Equal(t, "Mumbai, India", got.Location)
	assert.Equal(t, []string{"volunteer"}, got.HelpTypes)
	assert.Equal(t, []string{"map"}, got.Features)
	assert.NotEmpty(t, got.SubmittedAt)
}

func TestToggleOffLeavesOtherSelectionsIntact(t *testing.T) {
	var got types.SurveySubmission
	w := NewWizard(func(s types.SurveySubmission) error {
		got = s
		return nil
	})

	w.SetLocation("Nairobi, Kenya")
	w.ToggleFeature("map")
	w.ToggleFeature("alerts")
	w.ToggleFeature("reports")
	w.ToggleFeature("map")    // off again
	w.ToggleFeature("alerts") // off again
	w.ToggleFeature("alerts") // back on
	w.Next()
	w.Next()

	_, err := w.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"reports", "alerts"}, got.Features)
}

func TestSubmitFailurePropagates(t *testing.T) {
	w := NewWizard(func(types.SurveySubmission) error {
		return errors.New("store unavailable")
	})
	w.Next()
	w.Next()

	submitted, err := w.Next()
	assert.Error(t, err)
	assert.False(t, submitted)
}
