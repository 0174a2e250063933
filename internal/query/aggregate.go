package query

import "time"

// CountRows counts matching rows.
func CountRows(q Query) Statement {
	return q.Select("COUNT(*)")
}

// DistinctLearners counts distinct enterprise users across q.
func DistinctLearners(q Query) Statement {
	return q.Select("COUNT(DISTINCT enterprise_user_id)")
}

// ActiveLearners counts distinct learners with activity on or after cutoff.
func ActiveLearners(q Query, cutoff time.Time) Statement {
	return DistinctLearners(q.Where("active_since", "last_activity_date >= ?", cutoff))
}

// InactiveLearners counts distinct learners whose last activity is on or
// before cutoff.
func InactiveLearners(q Query, cutoff time.Time) Statement {
	return DistinctLearners(q.Where("inactive_since", "last_activity_date <= ?", cutoff))
}

// CourseCompletions counts passed enrollments.
func CourseCompletions(q Query) Statement {
	return CountRows(q.Where("completed", "has_passed = TRUE"))
}

// MaxCreated selects the latest row creation timestamp.
func MaxCreated(q Query) Statement {
	return q.Select("MAX(created)")
}
