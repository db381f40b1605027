package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ErrorResponseHandler(c, http.StatusTeapot, "something broke")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "something broke", response.Error)
	assert.Equal(t, http.StatusTeapot, response.Code)
}

func TestStatusHelpers(t *testing.T) {
	testCases := []struct {
		name         string
		fn           func(echo.Context, string) error
		expectedCode int
	}{
		{name: "BadRequest", fn: BadRequestResponse, expectedCode: http.StatusBadRequest},
		{name: "Unauthorized", fn: UnauthorizedResponse, expectedCode: http.StatusUnauthorized},
		{name: "Forbidden", fn: ForbiddenResponse, expectedCode: http.StatusForbidden},
		{name: "NotFound", fn: NotFoundResponse, expectedCode: http.StatusNotFound},
		{name: "InternalServerError", fn: InternalServerErrorResponse, expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, tc.fn(c, ""))
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}
