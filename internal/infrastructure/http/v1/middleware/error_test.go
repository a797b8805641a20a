package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/apperror"
)

func newErrorTestRouter(fail error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(fail)
		c.Abort()
	})
	return r
}

func TestErrorHandler_EnvelopeShape(t *testing.T) {
	r := newErrorTestRouter(apperror.NewValidation("end_date must not be before start_date"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, apperror.CodeValidation, body.Error.Code)
	assert.Equal(t, "end_date must not be before start_date", body.Error.Message)
}

func TestErrorHandler_UnknownErrorIsMasked(t *testing.T) {
	r := newErrorTestRouter(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, apperror.CodeInternal, body.Error.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.NotContains(t, body.Error.Message, assert.AnError.Error())
}
