package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "greengarden/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, map[string]string{"name": "Monstera"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Monstera")
	assert.Contains(t, rec.Body.String(), "timestamp")
}

func TestErrorMapsAppErrorStatus(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, apperrors.NotFound("Plant", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Plant not found")
}

func TestErrorHidesUnknownFailures(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, errors.New("connection reset by peer"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestPaginatedTotalPages(t *testing.T) {
	c, rec := newTestContext()

	err := Paginated(c, []string{"a", "b", "c"}, 25, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":25`)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}
