package models

import "time"

// LearnerProgress is the nightly learner-progress snapshot for an enterprise.
type LearnerProgress struct {
	EnterpriseCustomerUUID          string     `db:"enterprise_customer_uuid" json:"enterprise_customer_uuid"`
	EnterpriseCustomerName          string     `db:"enterprise_customer_name" json:"enterprise_customer_name"`
	ActiveSubscriptionPlan          bool       `db:"active_subscription_plan" json:"active_subscription_plan"`
	AssignedLicenses                int        `db:"assigned_licenses" json:"assigned_licenses"`
	ActivatedLicenses               int        `db:"activated_licenses" json:"activated_licenses"`
	AssignedLicensesPercentage      float64    `db:"assigned_licenses_percentage" json:"assigned_licenses_percentage"`
	ActivatedLicensesPercentage     float64    `db:"activated_licenses_percentage" json:"activated_licenses_percentage"`
	ActiveEnrollments               int        `db:"active_enrollments" json:"active_enrollments"`
	AtRiskEnrollmentLessThanOneHour int        `db:"at_risk_enrollment_less_than_one_hour" json:"at_risk_enrollment_less_than_one_hour"`
	AtRiskEnrollmentEndDateSoon     int        `db:"at_risk_enrollment_end_date_soon" json:"at_risk_enrollment_end_date_soon"`
	AtRiskEnrollmentDormant         int        `db:"at_risk_enrollment_dormant" json:"at_risk_enrollment_dormant"`
	CreatedAt                       *time.Time `db:"created_at" json:"created_at"`
}

// LearnerEngagement is the nightly engagement summary for an enterprise.
type LearnerEngagement struct {
	EnterpriseCustomerUUID string     `db:"enterprise_customer_uuid" json:"enterprise_customer_uuid"`
	EnterpriseCustomerName string     `db:"enterprise_customer_name" json:"enterprise_customer_name"`
	Enrolls                int        `db:"enrolls" json:"enrolls"`
	EnrollsPrior           int        `db:"enrolls_prior" json:"enrolls_prior"`
	Passed                 int        `db:"passed" json:"passed"`
	PassedPrior            int        `db:"passed_prior" json:"passed_prior"`
	Engage                 int        `db:"engage" json:"engage"`
	EngagePrior            int        `db:"engage_prior" json:"engage_prior"`
	Hours                  float64    `db:"hours" json:"hours"`
	HoursPrior             float64    `db:"hours_prior" json:"hours_prior"`
	ContractEndDate        *time.Time `db:"contract_end_date" json:"contract_end_date"`
	ActiveContract         bool       `db:"active_contract" json:"active_contract"`
	CreatedAt              *time.Time `db:"created_at" json:"created_at"`
}
