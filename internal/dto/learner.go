package dto

import (
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// LearnerQuery captures the learner list query string.
type LearnerQuery struct {
	PageQuery
	HasEnrollments       *bool    `form:"has_enrollments"`
	ActiveCourses        *bool    `form:"active_courses"`
	AllEnrollmentsPassed *bool    `form:"all_enrollments_passed"`
	ExtraFields          []string `form:"extra_fields" validate:"dive,oneof=enrollment_count course_completion_count"`
}

// Params converts the validated query into learner filter params.
func (q LearnerQuery) Params() query.LearnerParams {
	return query.LearnerParams{
		HasEnrollments:       q.HasEnrollments,
		ActiveCourses:        q.ActiveCourses,
		AllEnrollmentsPassed: q.AllEnrollmentsPassed,
		ExtraFields:          q.ExtraFields,
	}
}

// CompletedCoursesQuery captures the completed courses query string.
type CompletedCoursesQuery struct {
	PageQuery
	Format string `form:"format" validate:"omitempty,oneof=json pdf"`
}

// LearnerList is one page of learners.
type LearnerList struct {
	Learners   []models.Learner
	Pagination *models.Pagination
}

// CompletedCoursesList is one page of per-learner completion counts.
type CompletedCoursesList struct {
	Learners   []models.LearnerCompletedCourses
	Pagination *models.Pagination
}
