package ginutil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// QueryUint64 extracts an unsigned identifier from query parameters.
// Returns the parsed value and error if parsing fails.
func QueryUint64(c *gin.Context, key string) (uint64, error) {
	return strconv.ParseUint(c.Query(key), 10, 64)
}
