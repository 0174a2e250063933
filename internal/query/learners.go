package query

import (
	"time"

	"github.com/noah-isme/enterprise-data-api/internal/models"
)

// LearnerTable is the enterprise learner table, aliased as l.
const LearnerTable = "enterprise_learner l"

const learnerColumns = "l.enterprise_user_id, l.enterprise_customer_uuid, l.lms_user_id, l.user_email, l.user_username"

// consentedEnrollments selects a learner's consented enrollments within the
// learner's own enterprise.
const consentedEnrollments = "FROM " + EnrollmentTable + " e" +
	" WHERE e.enterprise_user_id = l.enterprise_user_id" +
	" AND e.enterprise_customer_uuid = l.enterprise_customer_uuid" +
	" AND e.is_consent_granted = TRUE"

// LearnerParams are the optional learner refinements.
type LearnerParams struct {
	HasEnrollments       *bool
	ActiveCourses        *bool
	AllEnrollmentsPassed *bool
	ExtraFields          []string
}

// WantsExtra reports whether the named annotation was requested.
func (p LearnerParams) WantsExtra(name string) bool {
	for _, field := range p.ExtraFields {
		if field == name {
			return true
		}
	}
	return false
}

// LearnersFor scopes learners to one enterprise.
func LearnersFor(enterpriseID string) Query {
	return From(LearnerTable).
		Where("enterprise", "l.enterprise_customer_uuid = ?", models.NormalizeEnterpriseID(enterpriseID))
}

// FilterLearners narrows learners by facts about their consented enrollments.
func FilterLearners(q Query, p LearnerParams, now time.Time) Query {
	if p.HasEnrollments != nil {
		if *p.HasEnrollments {
			q = q.Where("has_enrollments", "EXISTS (SELECT 1 "+consentedEnrollments+")")
		} else {
			q = q.Where("has_enrollments", "NOT EXISTS (SELECT 1 "+consentedEnrollments+")")
		}
	}
	if p.ActiveCourses != nil {
		if *p.ActiveCourses {
			q = q.Where("active_courses", "EXISTS (SELECT 1 "+consentedEnrollments+" AND e.course_end_date >= ?)", now)
		} else {
			q = q.Where("active_courses", "EXISTS (SELECT 1 "+consentedEnrollments+" AND e.course_end_date <= ?)", now)
		}
	}
	if p.AllEnrollmentsPassed != nil {
		q = q.Where("all_enrollments_passed",
			"EXISTS (SELECT 1 "+consentedEnrollments+" AND e.has_passed = ?)", *p.AllEnrollmentsPassed)
	}
	return q
}

// LearnerColumns returns the learner select list including any requested
// annotations. Learners with no consented enrollments annotate as 0.
func LearnerColumns(p LearnerParams) string {
	columns := learnerColumns
	if p.WantsExtra(models.LearnerExtraEnrollmentCount) {
		columns += ", COALESCE((SELECT COUNT(DISTINCT e.enrollment_id) " + consentedEnrollments +
			"), 0) AS " + models.LearnerExtraEnrollmentCount
	}
	if p.WantsExtra(models.LearnerExtraCourseCompletionCount) {
		columns += ", COALESCE((SELECT COUNT(DISTINCT e.enrollment_id) " + consentedEnrollments +
			" AND e.has_passed = TRUE), 0) AS " + models.LearnerExtraCourseCompletionCount
	}
	return columns
}

// LearnerOrderColumns maps orderable learner fields to SQL.
var LearnerOrderColumns = map[string]string{
	"user_email":              "l.user_email",
	"lms_user_id":             "l.lms_user_id",
	"enterprise_user_id":      "l.enterprise_user_id",
	"enrollment_count":        models.LearnerExtraEnrollmentCount,
	"course_completion_count": models.LearnerExtraCourseCompletionCount,
}

// CompletedCourses groups consented, passed enrollments by learner email.
func CompletedCourses(enterpriseID string) Query {
	return EnrollmentsFor(enterpriseID).Where("completed", "has_passed = TRUE")
}

// CompletedCoursesColumns is the grouped select list for CompletedCourses.
const CompletedCoursesColumns = "user_email, COUNT(courserun_key) AS completed_courses"

// CompletedCoursesGroupBy groups CompletedCourses rows.
const CompletedCoursesGroupBy = "GROUP BY user_email"

// CompletedCoursesOrderColumns maps orderable completed-course fields to SQL.
var CompletedCoursesOrderColumns = map[string]string{
	"user_email":        "user_email",
	"completed_courses": "completed_courses",
}
