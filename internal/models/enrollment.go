package models

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Enrollment is one learner's enrollment in one course run, as exposed to
// enterprise administrators. Field order follows EnrollmentCSVHeader.
type Enrollment struct {
	EnrollmentID              int64      `db:"enrollment_id" json:"enrollment_id"`
	EnterpriseEnrollmentID    int64      `db:"enterprise_enrollment_id" json:"enterprise_enrollment_id"`
	IsConsentGranted          bool       `db:"is_consent_granted" json:"is_consent_granted"`
	PaidBy                    *string    `db:"paid_by" json:"paid_by"`
	UserCurrentEnrollmentMode string     `db:"user_current_enrollment_mode" json:"user_current_enrollment_mode"`
	EnrollmentDate            *time.Time `db:"enrollment_date" json:"enrollment_date"`
	UnenrollmentDate          *time.Time `db:"unenrollment_date" json:"unenrollment_date"`
	UnenrollmentEndWithinDate *bool      `db:"unenrollment_end_within_date" json:"unenrollment_end_within_date"`
	IsRefunded                *bool      `db:"is_refunded" json:"is_refunded"`
	SeatDeliveryMethod        *string    `db:"seat_delivery_method" json:"seat_delivery_method"`
	OfferID                   *string    `db:"offer_id" json:"offer_id"`
	OfferName                 *string    `db:"offer_name" json:"offer_name"`
	OfferType                 *string    `db:"offer_type" json:"offer_type"`
	CouponCode                *string    `db:"coupon_code" json:"coupon_code"`
	CouponName                *string    `db:"coupon_name" json:"coupon_name"`
	ContractID                *string    `db:"contract_id" json:"contract_id"`
	CourseListPrice           *float64   `db:"course_list_price" json:"course_list_price"`
	AmountLearnerPaid         *float64   `db:"amount_learner_paid" json:"amount_learner_paid"`
	CourseKey                 string     `db:"course_key" json:"course_key"`
	CourserunKey              string     `db:"courserun_key" json:"courserun_key"`
	CourseTitle               *string    `db:"course_title" json:"course_title"`
	CoursePacingType          *string    `db:"course_pacing_type" json:"course_pacing_type"`
	CourseStartDate           *time.Time `db:"course_start_date" json:"course_start_date"`
	CourseEndDate             *time.Time `db:"course_end_date" json:"course_end_date"`
	CourseDurationWeeks       *string    `db:"course_duration_weeks" json:"course_duration_weeks"`
	CourseMaxEffort           *int       `db:"course_max_effort" json:"course_max_effort"`
	CourseMinEffort           *int       `db:"course_min_effort" json:"course_min_effort"`
	CoursePrimaryProgram      *string    `db:"course_primary_program" json:"course_primary_program"`
	PrimaryProgramType        *string    `db:"primary_program_type" json:"primary_program_type"`
	CoursePrimarySubject      *string    `db:"course_primary_subject" json:"course_primary_subject"`
	HasPassed                 bool       `db:"has_passed" json:"has_passed"`
	LastActivityDate          *time.Time `db:"last_activity_date" json:"last_activity_date"`
	ProgressStatus            *string    `db:"progress_status" json:"progress_status"`
	PassedDate                *time.Time `db:"passed_date" json:"passed_date"`
	CurrentGrade              *float64   `db:"current_grade" json:"current_grade"`
	LetterGrade               *string    `db:"letter_grade" json:"letter_grade"`
	EnterpriseUserID          int64      `db:"enterprise_user_id" json:"enterprise_user_id"`
	UserEmail                 *string    `db:"user_email" json:"user_email"`
	UserAccountCreationDate   *time.Time `db:"user_account_creation_date" json:"user_account_creation_date"`
	UserCountryCode           *string    `db:"user_country_code" json:"user_country_code"`
	UserUsername              *string    `db:"user_username" json:"user_username"`
	EnterpriseName            string     `db:"enterprise_name" json:"enterprise_name"`
	EnterpriseCustomerUUID    string     `db:"enterprise_customer_uuid" json:"enterprise_customer_uuid"`
	EnterpriseSSOUID          *string    `db:"enterprise_sso_uid" json:"enterprise_sso_uid"`
	Created                   time.Time  `db:"created" json:"created"`
	CourseAPIURL              *string    `db:"course_api_url" json:"course_api_url"`
	TotalLearningTimeHours    *float64   `db:"total_learning_time_hours" json:"total_learning_time_hours"`
	IsSubsidy                 bool       `db:"is_subsidy" json:"is_subsidy"`
	CourseProductLine         *string    `db:"course_product_line" json:"course_product_line"`
	BudgetID                  *string    `db:"budget_id" json:"budget_id"`
}

// EnrollmentCSVHeader is the column order of the admin-portal CSV export. It
// must stay aligned with the progress report produced by enterprise reporting,
// so new columns go at the end.
var EnrollmentCSVHeader = []string{
	"enrollment_id", "enterprise_enrollment_id", "is_consent_granted", "paid_by",
	"user_current_enrollment_mode", "enrollment_date", "unenrollment_date",
	"unenrollment_end_within_date", "is_refunded", "seat_delivery_method",
	"offer_id", "offer_name", "offer_type", "coupon_code", "coupon_name", "contract_id",
	"course_list_price", "amount_learner_paid", "course_key", "courserun_key",
	"course_title", "course_pacing_type", "course_start_date", "course_end_date",
	"course_duration_weeks", "course_max_effort", "course_min_effort",
	"course_primary_program", "primary_program_type", "course_primary_subject", "has_passed",
	"last_activity_date", "progress_status", "passed_date", "current_grade",
	"letter_grade", "enterprise_user_id", "user_email", "user_account_creation_date",
	"user_country_code", "user_username", "enterprise_name", "enterprise_customer_uuid",
	"enterprise_sso_uid", "created", "course_api_url", "total_learning_time_hours", "is_subsidy",
	"course_product_line", "budget_id",
}

// EnrollmentColumns lists the selectable columns, in CSV order.
func EnrollmentColumns() []string {
	return append([]string(nil), EnrollmentCSVHeader...)
}

var enrollmentFieldIndex = buildFieldIndex(reflect.TypeOf(Enrollment{}))

func buildFieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" {
			index[name] = i
		}
	}
	return index
}

// HasEnrollmentField reports whether name is a column of Enrollment.
func HasEnrollmentField(name string) bool {
	_, ok := enrollmentFieldIndex[name]
	return ok
}

// FieldValue returns the dereferenced value of the named column; ok is false
// for unknown columns and NULL values.
func (e *Enrollment) FieldValue(name string) (interface{}, bool) {
	i, ok := enrollmentFieldIndex[name]
	if !ok {
		return nil, false
	}
	v := reflect.ValueOf(e).Elem().Field(i)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	return v.Interface(), true
}

// CSVRecord renders the enrollment as header -> cell text.
func (e *Enrollment) CSVRecord() map[string]string {
	record := make(map[string]string, len(EnrollmentCSVHeader))
	for _, column := range EnrollmentCSVHeader {
		value, ok := e.FieldValue(column)
		if !ok {
			record[column] = ""
			continue
		}
		record[column] = formatCell(value)
	}
	return record
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}
