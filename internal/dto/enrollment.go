package dto

import (
	"time"

	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// EnrollmentQuery captures the enrollment list and overview query string.
type EnrollmentQuery struct {
	PageQuery
	PassedDate                string `form:"passed_date"`
	LearnerActivity           string `form:"learner_activity"`
	Search                    string `form:"search"`
	SearchAll                 string `form:"search_all"`
	SearchCourse              string `form:"search_course"`
	SearchStartDate           string `form:"search_start_date" validate:"omitempty,datetime=2006-01-02"`
	OfferID                   string `form:"offer_id"`
	BudgetID                  string `form:"budget_id"`
	IgnoreNullCourseListPrice string `form:"ignore_null_course_list_price"`
	CourseProductLine         string `form:"course_product_line"`
	IsSubsidy                 *bool  `form:"is_subsidy"`
	Format                    string `form:"format" validate:"omitempty,oneof=json csv"`
}

// Params converts the validated query into enrollment filter params.
func (q EnrollmentQuery) Params() query.EnrollmentParams {
	params := query.EnrollmentParams{
		PassedDate:                q.PassedDate,
		LearnerActivity:           q.LearnerActivity,
		Search:                    q.Search,
		SearchAll:                 q.SearchAll,
		SearchCourse:              q.SearchCourse,
		OfferID:                   q.OfferID,
		BudgetID:                  q.BudgetID,
		IgnoreNullCourseListPrice: q.IgnoreNullCourseListPrice != "",
		CourseProductLine:         q.CourseProductLine,
		IsSubsidy:                 q.IsSubsidy,
	}
	if q.SearchStartDate != "" {
		if start, err := time.Parse("2006-01-02", q.SearchStartDate); err == nil {
			params.SearchStartDate = &start
		}
	}
	return params
}

// ActiveLearnerCounts are distinct learners active since each cutoff.
type ActiveLearnerCounts struct {
	PastWeek  int `json:"past_week"`
	PastMonth int `json:"past_month"`
}

// EnrollmentOverview is the headline summary of an enterprise's enrollments.
type EnrollmentOverview struct {
	EnrolledLearners  int                 `json:"enrolled_learners"`
	ActiveLearners    ActiveLearnerCounts `json:"active_learners"`
	CourseCompletions int                 `json:"course_completions"`
	LastUpdatedDate   *time.Time          `json:"last_updated_date"`
	NumberOfUsers     int                 `json:"number_of_users"`
}

// LegacyEnrollmentOverview is the v0 summary.
type LegacyEnrollmentOverview struct {
	EnrolledLearners  int                 `json:"enrolled_learners"`
	ActiveLearners    ActiveLearnerCounts `json:"active_learners"`
	CourseCompletions int                 `json:"course_completions"`
}
