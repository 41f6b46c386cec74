package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_AppError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(errors.NotFound("Expense", "abc"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(errors.NotFoundError), body["type"])
	assert.Equal(t, "Expense not found", body["message"])
	assert.Equal(t, "ID: abc", body["detail"])
}

func TestErrorHandler_DomainValidationCarriesKind(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(errors.DomainValidation(errors.KindSplitSumMismatch,
			"Custom split amounts don't match total amount", "89 vs 90"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errors.KindSplitSumMismatch, body["code"])
}

func TestErrorHandler_InternalDetailHidden(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(errors.NewDatabaseError(fmt.Errorf("pq: column missing")))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, w.Body.String(), "column missing")
	assert.Equal(t, "Database operation failed", body["message"])
}

func TestErrorHandler_UnknownErrorSanitized(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("something internal broke"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "something internal broke")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	assert.Equal(t, http.StatusOK, w.Code)
}
