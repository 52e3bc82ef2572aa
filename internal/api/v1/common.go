package v1

import (
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/gin-gonic/gin"
)

// accountID pulls the authenticated account from the request context.
// Every account-scoped route requires it.
func accountID(c *gin.Context) (string, error) {
	id := types.GetAccountID(c.Request.Context())
	if id == "" {
		return "", ierr.NewError("missing account identity").
			WithHint("X-Account-ID header is required").
			Mark(ierr.ErrValidation)
	}
	return id, nil
}
