package models

// Learner is a user linked to an enterprise, with or without enrollments.
type Learner struct {
	EnterpriseUserID       int64   `db:"enterprise_user_id" json:"enterprise_user_id"`
	EnterpriseCustomerUUID string  `db:"enterprise_customer_uuid" json:"enterprise_customer_uuid"`
	LMSUserID              *int64  `db:"lms_user_id" json:"lms_user_id"`
	UserEmail              string  `db:"user_email" json:"user_email"`
	UserUsername           *string `db:"user_username" json:"user_username"`
	EnrollmentCount        *int    `db:"enrollment_count" json:"enrollment_count,omitempty"`
	CourseCompletionCount  *int    `db:"course_completion_count" json:"course_completion_count,omitempty"`
}

// Extra learner fields computed on demand.
const (
	LearnerExtraEnrollmentCount       = "enrollment_count"
	LearnerExtraCourseCompletionCount = "course_completion_count"
)

// LearnerCompletedCourses is the number of passed, consented enrollments per email.
type LearnerCompletedCourses struct {
	UserEmail        string `db:"user_email" json:"user_email"`
	CompletedCourses int    `db:"completed_courses" json:"completed_courses"`
}
