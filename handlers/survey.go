package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"panpath-guardian/db"
	"panpath-guardian/survey"
	"panpath-guardian/types"
)

// SubmitSurvey accepts the onboarding wizard's accumulated selections and
// walks them through the wizard so the single-submission semantics hold.
func SubmitSurvey(c *gin.Context, store *firestore.Client) {
	var req struct {
		Location  string   `json:"location"`
		HelpTypes []string `json:"helpTypes"`
		Features  []string `json:"features"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	w := survey.NewWizard(func(sub types.SurveySubmission) error {
		return db.SaveSurveySubmission(store, sub)
	})

	w.SetLocation(req.Location)
	w.Next()
	for _, h := range req.HelpTypes {
		w.ToggleHelpType(h)
	}
	w.Next()
	for _, f := range req.Features {
		w.ToggleFeature(f)
	}

	submitted, err := w.Next()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save survey"})
		return
	}
	if !submitted {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "survey did not complete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "survey submitted"})
}
