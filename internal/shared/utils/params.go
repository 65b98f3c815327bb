package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"devicedesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// ParsePagination extracts page/page_size query parameters with sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
