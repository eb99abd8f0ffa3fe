package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// MaxPageSize caps the page size a view caller may request.
const MaxPageSize = 100

// ParsePage extracts pageNumber and pageSize from the query string.
// Missing or non-positive values come back as 0 so they are omitted from the
// backend request; pageSize is capped at MaxPageSize.
func ParsePage(c *gin.Context) (pageNumber, pageSize int) {
	pageNumber = positiveQueryInt(c, "pageNumber")
	pageSize = positiveQueryInt(c, "pageSize")
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize
}

// ParseConfirm reports whether the request carries confirm=true.
func ParseConfirm(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}

func positiveQueryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ErrUnconfirmed is returned to delete requests that lack confirm=true.
var ErrUnconfirmed = domain.NewAppError(domain.CodeValidation, "Deletion must be confirmed with confirm=true", nil)
