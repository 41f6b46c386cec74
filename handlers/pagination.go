package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// getPaginationParams parses limit and offset query parameters, clamping to
// sane bounds.
func getPaginationParams(c *gin.Context) (offset, limit int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if v, err := strconv.Atoi(c.DefaultQuery("offset", "")); err == nil && v >= 0 {
		offset = v
	}
	return offset, limit
}
