package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// GetActiveIdentity pulls the verified token object placed on the context by
// the authentication middleware.
func GetActiveIdentity(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get("identity")
	if !exists {
		return TokenObject{}, fmt.Errorf("no active identity on request context")
	}

	identity, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("identity on request context has unexpected type")
	}

	return identity, nil
}
