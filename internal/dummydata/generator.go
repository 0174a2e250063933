// Package dummydata builds synthetic learners and enrollments for local
// development databases.
package dummydata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/enterprise-data-api/internal/models"
)

// Options sizes and seeds a generated dataset.
type Options struct {
	EnterpriseID          string
	EnterpriseName        string
	Learners              int
	EnrollmentsPerLearner int
	Now                   time.Time
	Rand                  *rand.Rand
}

// Dataset is a generated set of rows for one enterprise.
type Dataset struct {
	Learners    []models.Learner
	Enrollments []models.Enrollment
}

var (
	courseTitles  = []string{"Data Science Fundamentals", "Intro to Go", "Leadership Essentials", "Cloud Architecture", "Machine Learning"}
	productLines  = []string{"OCM", "Executive Education", "Boot Camp"}
	pacingTypes   = []string{"self_paced", "instructor_paced"}
	letterGrades  = []string{"A", "B", "C", "Pass", "Fail"}
	countryCodes  = []string{"US", "PK", "DE", "IN", "BR"}
	progressState = []string{"In Progress", "Passed", "Failed"}
)

// Generate builds opts.Learners learners, each with opts.EnrollmentsPerLearner
// enrollments. Consent, pass state and dates are randomised.
func Generate(opts Options) Dataset {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(opts.Now.UnixNano()))
	}
	enterpriseID := models.NormalizeEnterpriseID(opts.EnterpriseID)
	name := opts.EnterpriseName
	if name == "" {
		name = "Dummy Enterprise " + enterpriseID[:min(8, len(enterpriseID))]
	}

	userBase := r.Int63n(1_000_000_000)
	enrollmentBase := r.Int63n(1_000_000_000)
	out := Dataset{
		Learners:    make([]models.Learner, 0, opts.Learners),
		Enrollments: make([]models.Enrollment, 0, opts.Learners*opts.EnrollmentsPerLearner),
	}

	for i := 0; i < opts.Learners; i++ {
		userID := userBase + int64(i)
		lmsID := userID + 7
		handle := "learner-" + uuid.NewString()[:8]
		email := handle + "@example.com"
		learner := models.Learner{
			EnterpriseUserID:       userID,
			EnterpriseCustomerUUID: enterpriseID,
			LMSUserID:              &lmsID,
			UserEmail:              email,
			UserUsername:           &handle,
		}
		out.Learners = append(out.Learners, learner)

		for j := 0; j < opts.EnrollmentsPerLearner; j++ {
			id := enrollmentBase + int64(len(out.Enrollments))
			out.Enrollments = append(out.Enrollments, enrollment(r, opts.Now, id, learner, name))
		}
	}
	return out
}

func enrollment(r *rand.Rand, now time.Time, id int64, learner models.Learner, enterpriseName string) models.Enrollment {
	title := pick(r, courseTitles)
	courseKey := fmt.Sprintf("edX+%s", uuid.NewString()[:6])
	start := now.AddDate(0, 0, -r.Intn(120))
	end := start.AddDate(0, 0, 30+r.Intn(120))
	enrolled := start.AddDate(0, 0, -r.Intn(14))
	lastActivity := now.AddDate(0, 0, -r.Intn(45))
	created := now.Add(-time.Duration(r.Intn(48)) * time.Hour)
	accountCreated := enrolled.AddDate(0, -1-r.Intn(24), 0)
	price := float64(50 + r.Intn(400))
	paid := 0.0
	grade := r.Float64()
	hours := float64(r.Intn(4000)) / 100
	minEffort, maxEffort := 2+r.Intn(3), 5+r.Intn(5)

	e := models.Enrollment{
		EnrollmentID:              id,
		EnterpriseEnrollmentID:    id,
		IsConsentGranted:          r.Intn(5) != 0,
		PaidBy:                    strPtr("enterprise"),
		UserCurrentEnrollmentMode: "verified",
		EnrollmentDate:            &enrolled,
		CourseListPrice:           &price,
		AmountLearnerPaid:         &paid,
		CourseKey:                 courseKey,
		CourserunKey:              "course-v1:" + courseKey + "+" + start.Format("2006"),
		CourseTitle:               &title,
		CoursePacingType:          strPtr(pick(r, pacingTypes)),
		CourseStartDate:           &start,
		CourseEndDate:             &end,
		CourseMinEffort:           &minEffort,
		CourseMaxEffort:           &maxEffort,
		LastActivityDate:          &lastActivity,
		ProgressStatus:            strPtr(pick(r, progressState)),
		CurrentGrade:              &grade,
		LetterGrade:               strPtr(pick(r, letterGrades)),
		EnterpriseUserID:          learner.EnterpriseUserID,
		UserEmail:                 strPtr(learner.UserEmail),
		UserAccountCreationDate:   &accountCreated,
		UserCountryCode:           strPtr(pick(r, countryCodes)),
		UserUsername:              learner.UserUsername,
		EnterpriseName:            enterpriseName,
		EnterpriseCustomerUUID:    learner.EnterpriseCustomerUUID,
		Created:                   created,
		TotalLearningTimeHours:    &hours,
		IsSubsidy:                 r.Intn(2) == 0,
		CourseProductLine:         strPtr(pick(r, productLines)),
	}
	if r.Intn(2) == 0 {
		passed := lastActivity
		e.HasPassed = true
		e.PassedDate = &passed
	}
	if e.IsSubsidy {
		e.OfferID = strPtr(uuidHex())
		e.BudgetID = strPtr(uuid.NewString())
	}
	return e
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}

func strPtr(s string) *string { return &s }

func uuidHex() string {
	return models.NormalizeEnterpriseID(uuid.NewString())
}
