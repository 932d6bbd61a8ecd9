package http

import (
	"github.com/PritamDhobale/CreatorHub/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes: validation 400,
// unmet precondition 409, unresolvable path 404, failed external call 502.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}
