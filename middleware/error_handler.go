package middleware

import (
	"net/http"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body produced for failed requests.
type ErrorResponse struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into JSON
// responses. AppErrors carry their own status and taxonomy; everything else
// is sanitized to a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appErr, ok := err.(*errors.AppError); ok {
			status := appErr.GetHTTPStatus()

			if status >= http.StatusInternalServerError {
				log.Errorw("Request failed",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"requestId", c.GetString(RequestIDKey),
					"type", appErr.Type,
					"error", appErr.Raw,
				)
			} else {
				log.Debugw("Request rejected",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"type", appErr.Type,
					"message", appErr.Message,
				)
			}

			response := gin.H{
				"type":    string(appErr.Type),
				"message": appErr.Message,
			}
			if appErr.Code != "" {
				response["code"] = appErr.Code
			}
			// Internal details stay out of 5xx responses.
			if appErr.Detail != "" && status < http.StatusInternalServerError {
				response["detail"] = appErr.Detail
			}

			c.JSON(status, response)
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Debugw("Request binding failed",
				"path", c.Request.URL.Path, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"type":    string(errors.ValidationError),
				"message": "Failed to bind request",
				"detail":  err.Error(),
			})
			return
		}

		log.Errorw("Unexpected error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"requestId", c.GetString(RequestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"type":    string(errors.ServerError),
			"message": "An unexpected error occurred",
		})
	}
}
