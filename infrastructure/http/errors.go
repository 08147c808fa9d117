package http

import (
	"chat-vault/errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

// respondError writes the taxonomy kind and stable reason of err.
// Internal causes are logged, never sent.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	kind, reason := errors.Describe(err)
	status := errors.MapToHTTPStatus(err)
	if kind == errors.KindInternal || kind == errors.KindDependency {
		log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, errorBody{Kind: kind, Message: reason})
}

func invalidPayload(err error) error {
	return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
}
