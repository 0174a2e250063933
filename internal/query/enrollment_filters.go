package query

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"github.com/noah-isme/enterprise-data-api/internal/models"
)

// EnrollmentTable is the enrollment fact table.
const EnrollmentTable = "enterprise_learner_enrollment"

// Learner activity buckets accepted by the learner_activity filter.
const (
	ActivityActivePastWeek    = "active_past_week"
	ActivityInactivePastWeek  = "inactive_past_week"
	ActivityInactivePastMonth = "inactive_past_month"
)

// PassedDateLastWeek is the only supported passed_date value.
const PassedDateLastWeek = "last_week"

// EnrollmentParams are the optional enrollment refinements. Zero values are
// ignored.
type EnrollmentParams struct {
	PassedDate                string
	LearnerActivity           string
	Search                    string
	SearchAll                 string
	SearchCourse              string
	SearchStartDate           *time.Time
	OfferID                   string
	BudgetID                  string
	IgnoreNullCourseListPrice bool
	CourseProductLine         string
	IsSubsidy                 *bool
}

// Fingerprint is a short stable digest of the non-empty params, used to key
// cached result sets.
func (p EnrollmentParams) Fingerprint() string {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("passed_date", p.PassedDate)
	set("learner_activity", p.LearnerActivity)
	set("search", p.Search)
	set("search_all", p.SearchAll)
	set("search_course", p.SearchCourse)
	if p.SearchStartDate != nil {
		set("search_start_date", p.SearchStartDate.Format("2006-01-02"))
	}
	set("offer_id", ParseOfferID(p.OfferID).String())
	set("budget_id", p.BudgetID)
	if p.IgnoreNullCourseListPrice {
		set("ignore_null_course_list_price", "true")
	}
	set("course_product_line", p.CourseProductLine)
	if p.IsSubsidy != nil {
		set("is_subsidy", strconv.FormatBool(*p.IsSubsidy))
	}

	encoded := values.Encode()
	if encoded == "" {
		return "all"
	}
	sum := sha256.Sum256([]byte(encoded))
	return hex.EncodeToString(sum[:8])
}

// EnrollmentsFor scopes enrollments to one enterprise. Rows without data
// sharing consent are excluded here so no later filter can reintroduce them.
func EnrollmentsFor(enterpriseID string) Query {
	return From(EnrollmentTable).
		Where("enterprise", "enterprise_customer_uuid = ?", models.NormalizeEnterpriseID(enterpriseID)).
		Where("consent", "is_consent_granted = TRUE")
}

type enrollmentFilter func(q Query, p EnrollmentParams, now time.Time) Query

var enrollmentFilters = []enrollmentFilter{
	filterPassedDate,
	filterLearnerActivity,
	filterSearch,
	filterSearchAll,
	filterSearchCourse,
	filterSearchStartDate,
	filterOfferID,
	filterBudgetID,
	filterIgnoreNullCourseListPrice,
	filterCourseProductLine,
	filterIsSubsidy,
}

// FilterEnrollments applies every refinement present in p, in a fixed order.
func FilterEnrollments(q Query, p EnrollmentParams, now time.Time) Query {
	for _, apply := range enrollmentFilters {
		q = apply(q, p, now)
	}
	return q
}

// passed_date compares against the current instant; learner_activity cutoffs
// use calendar dates (PastWeek, PastMonth). Keep them distinct.
func filterPassedDate(q Query, p EnrollmentParams, now time.Time) Query {
	if p.PassedDate != PassedDateLastWeek {
		return q
	}
	return q.Where("passed_date", "has_passed = TRUE AND passed_date >= ? AND passed_date <= ?", now.AddDate(0, 0, -7), now)
}

func filterLearnerActivity(q Query, p EnrollmentParams, now time.Time) Query {
	if p.LearnerActivity == "" {
		return q
	}
	q = q.Where("active_enrollment", "has_passed = FALSE AND course_end_date >= ?", now)

	switch p.LearnerActivity {
	case ActivityActivePastWeek:
		q = q.Where("learner_activity", "last_activity_date >= ?", PastWeek(now))
	case ActivityInactivePastWeek:
		q = q.Where("learner_activity", "last_activity_date <= ?", PastWeek(now))
	case ActivityInactivePastMonth:
		q = q.Where("learner_activity", "last_activity_date <= ?", PastMonth(now))
	}
	return q
}

func filterSearch(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.Search == "" {
		return q
	}
	return q.Where("search", "user_email ILIKE ?", containsPattern(p.Search))
}

func filterSearchAll(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.SearchAll == "" {
		return q
	}
	pattern := containsPattern(p.SearchAll)
	return q.Where("search_all", "(user_email ILIKE ? OR course_title ILIKE ?)", pattern, pattern)
}

func filterSearchCourse(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.SearchCourse == "" {
		return q
	}
	return q.Where("search_course", "course_title ILIKE ?", containsPattern(p.SearchCourse))
}

func filterSearchStartDate(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.SearchStartDate == nil {
		return q
	}
	return q.Where("search_start_date", "course_start_date = ?", DateOf(*p.SearchStartDate))
}

func filterOfferID(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.OfferID == "" {
		return q
	}
	return q.Where("offer_id", "offer_id = ?", ParseOfferID(p.OfferID).String())
}

func filterBudgetID(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.BudgetID == "" {
		return q
	}
	return q.Where("budget_id", "budget_id = ?", p.BudgetID)
}

func filterIgnoreNullCourseListPrice(q Query, p EnrollmentParams, _ time.Time) Query {
	if !p.IgnoreNullCourseListPrice {
		return q
	}
	return q.Where("ignore_null_course_list_price", "course_list_price IS NOT NULL")
}

func filterCourseProductLine(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.CourseProductLine == "" {
		return q
	}
	return q.Where("course_product_line", "course_product_line = ?", p.CourseProductLine)
}

func filterIsSubsidy(q Query, p EnrollmentParams, _ time.Time) Query {
	if p.IsSubsidy == nil {
		return q
	}
	return q.Where("is_subsidy", "is_subsidy = ?", *p.IsSubsidy)
}
