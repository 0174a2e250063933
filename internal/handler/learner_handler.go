package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/middleware"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	"github.com/noah-isme/enterprise-data-api/pkg/export"
	"github.com/noah-isme/enterprise-data-api/pkg/response"
)

type learnerService interface {
	List(ctx context.Context, enterpriseID string, params query.LearnerParams, ordering string, page models.PageRequest) (*dto.LearnerList, error)
	CompletedCourses(ctx context.Context, enterpriseID, ordering string, page models.PageRequest) (*dto.CompletedCoursesList, error)
}

// LearnerHandler exposes learner endpoints.
type LearnerHandler struct {
	learners learnerService
	paging   Paging
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewLearnerHandler constructs LearnerHandler.
func NewLearnerHandler(learners learnerService, paging Paging, logger *zap.Logger) *LearnerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearnerHandler{learners: learners, paging: paging, pdf: export.NewPDFExporter(), logger: logger}
}

// List godoc
// @Summary List enterprise learners
// @Tags Learners
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param has_enrollments query bool false "Has consented enrollments"
// @Param active_courses query bool false "Has enrollments that have not ended"
// @Param all_enrollments_passed query bool false "Has a passed enrollment"
// @Param extra_fields query []string false "enrollment_count, course_completion_count" collectionFormat(multi)
// @Param ordering query string false "Field name, prefix with - for descending"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/learners/ [get]
func (h *LearnerHandler) List(c *gin.Context) {
	var q dto.LearnerQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := pageRequest(c, q.PageQuery, h.paging)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.learners.List(c.Request.Context(), c.Param(middleware.EnterpriseParam), q.Params(), q.Ordering, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Learners, result.Pagination)
}

// CompletedCourses godoc
// @Summary Completed courses per learner
// @Tags Learners
// @Produce json
// @Produce application/pdf
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param ordering query string false "user_email or completed_courses, prefix with - for descending"
// @Param format query string false "json or pdf"
// @Success 200 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/learners/completed_courses/ [get]
func (h *LearnerHandler) CompletedCourses(c *gin.Context) {
	var q dto.CompletedCoursesQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := pageRequest(c, q.PageQuery, h.paging)
	if err != nil {
		response.Error(c, err)
		return
	}
	enterpriseID := c.Param(middleware.EnterpriseParam)
	result, err := h.learners.CompletedCourses(c.Request.Context(), enterpriseID, q.Ordering, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	if q.Format == "pdf" {
		h.writePDF(c, enterpriseID, result.Learners)
		return
	}
	response.JSON(c, http.StatusOK, result.Learners, result.Pagination)
}

func (h *LearnerHandler) writePDF(c *gin.Context, enterpriseID string, rows []models.LearnerCompletedCourses) {
	data := export.Dataset{Headers: []string{"user_email", "completed_courses"}, Rows: make([]map[string]string, len(rows))}
	for i, row := range rows {
		data.Rows[i] = map[string]string{
			"user_email":        row.UserEmail,
			"completed_courses": strconv.Itoa(row.CompletedCourses),
		}
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="completed_courses.pdf"`)
	c.Status(http.StatusOK)
	if err := h.pdf.Write(c.Writer, data, "Completed courses"); err != nil {
		h.logger.Error("completed courses pdf export failed", zap.String("enterprise_id", enterpriseID), zap.Error(err))
	}
}
