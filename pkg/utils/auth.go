package utils

import (
	"errors"

	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/pkg/types"
	"github.com/gin-gonic/gin"
)

// IsAdmin reports whether the user holds the admin role. User 1 is the
// bootstrap admin.
func IsAdmin(uid uint, repo repository.UserRepo) (bool, error) {
	if uid == 1 {
		return true, nil
	}
	return repo.IsAdmin(uid)
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}
