package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const pathParam = "filepath"

// requestedPath returns the wildcard part of the route with its leading
// slash removed. net/http has already percent-decoded it.
func requestedPath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param(pathParam), "/")
}
