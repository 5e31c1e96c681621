// Package httputil holds small request parsing helpers for the gin handlers.
package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive numeric path parameter
func ParseID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}
