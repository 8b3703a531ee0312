package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "http error",
			method:   http.MethodGet,
			err:      echo.NewHTTPError(http.StatusNotFound, "booking not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"booking not found"}`,
		},
		{
			name:     "plain error hides details",
			method:   http.MethodGet,
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal Server Error"}`,
		},
		{
			name:     "non string message",
			method:   http.MethodGet,
			err:      echo.NewHTTPError(http.StatusBadRequest, map[string]int{"x": 1}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Bad Request"}`,
		},
		{
			name:     "head has no body",
			method:   http.MethodHead,
			err:      echo.NewHTTPError(http.StatusForbidden, "admin access required"),
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, "/", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
