package dto

import "github.com/noah-isme/enterprise-data-api/internal/models"

// Insights holds whichever admin snapshots exist for an enterprise.
type Insights struct {
	LearnerProgress   *models.LearnerProgress   `json:"learner_progress,omitempty"`
	LearnerEngagement *models.LearnerEngagement `json:"learner_engagement,omitempty"`
}

// Empty reports whether neither snapshot was found.
func (i Insights) Empty() bool {
	return i.LearnerProgress == nil && i.LearnerEngagement == nil
}
