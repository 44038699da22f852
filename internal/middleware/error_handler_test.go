package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func render(err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	NewErrorHandler(zap.NewNop())(err, c)
	return rec
}

func TestErrorHandler(t *testing.T) {
	rec := render(echo.NewHTTPError(http.StatusConflict, "shift is not open"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"shift is not open"}`, rec.Body.String())

	rec = render(echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]any{
		"message": "validation failed",
		"errors":  map[string]string{"rating": "Must be less than or equal to 5."},
	}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"message":"validation failed","errors":{"rating":"Must be less than or equal to 5."}}`, rec.Body.String())

	rec = render(errors.New("pq: relation \"shifts\" does not exist"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())

	rec = render(echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(errors.New("dial tcp: refused")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "dial tcp")

	rec = render(&echo.HTTPError{Code: http.StatusNotFound})
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}
