package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

func TestPageQueryPageRequest(t *testing.T) {
	page, err := PageQuery{}.PageRequest(20, 100, false)
	require.NoError(t, err)
	assert.Equal(t, models.PageRequest{Page: 1, PageSize: 20}, page)

	page, err = PageQuery{Page: 3, PageSize: 50}.PageRequest(20, 100, false)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Offset())

	page, err = PageQuery{Page: 3}.PageRequest(20, 100, true)
	require.NoError(t, err)
	assert.True(t, page.Disabled)
}

func TestPageQueryRejectsOutOfRange(t *testing.T) {
	for name, q := range map[string]PageQuery{
		"page size above max":  {Page: 1, PageSize: 101},
		"offset overflows int": {Page: 1e17, PageSize: 100},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := q.PageRequest(20, 100, false)
			require.Error(t, err)

			var appErr *appErrors.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
		})
	}
}
