package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

// Paging bounds page sizes on list endpoints.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

var queryValidator = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("form"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindQuery decodes the query string into dest and validates it. Malformed
// values such as has_enrollments=maybe fail during decoding.
func bindQuery(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindQuery(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}
	if err := queryValidator.Struct(dest); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			names := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				names = append(names, fe.Field())
			}
			message := fmt.Sprintf("invalid value for %s", strings.Join(names, ", "))
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}
	return nil
}

// pageRequest resolves paging; the presence of no_page disables it.
func pageRequest(c *gin.Context, q dto.PageQuery, paging Paging) (models.PageRequest, error) {
	_, noPage := c.GetQuery("no_page")
	return q.PageRequest(paging.DefaultSize, paging.MaxSize, noPage)
}
