package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoffee/backend/internal/interfaces/http/dto"
)

type validationTestRequest struct {
	HistoryID  *int   `json:"history_id" binding:"required"`
	ClientName string `json:"client_name" binding:"required,max=8"`
	Skip       int    `json:"skip" binding:"min=0"`
}

func bindAndReport(t *testing.T, body string) (int, dto.ErrorResponse) {
	t.Helper()
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req validationTestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-validate")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.ErrorResponse
	if w.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestHandleValidationError(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		code, _ := bindAndReport(t, `{"history_id":0,"client_name":"farm"}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		code, resp := bindAndReport(t, `{"client_name":"far too long","skip":-1}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrCodeValidation, resp.Code)
		assert.Equal(t, "req-validate", resp.RequestID)

		fields := map[string]string{}
		for _, d := range resp.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", fields["history_id"])
		assert.Equal(t, "Must be at most 8 characters", fields["client_name"])
		assert.Equal(t, "Must be at least 0", fields["skip"])
	})

	t.Run("malformed json has no details", func(t *testing.T) {
		code, resp := bindAndReport(t, `{"history_id":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Code)
		assert.Empty(t, resp.Details)
	})

	t.Run("wrong type has no details", func(t *testing.T) {
		code, resp := bindAndReport(t, `{"history_id":"abc","client_name":"farm"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Code)
	})
}
