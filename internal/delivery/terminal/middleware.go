package terminal

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			h.logger.Error("handle error",
				zap.String("module_id", h.current),
				zap.Error(err),
			)
			h.println(msgInternalError)
			return nil
		}
		return nil
	}
}
