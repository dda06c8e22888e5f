package warningcollector

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"k8s.io/client-go/rest"
)

type contextKey string
type warnings []string

var warningsContextKey = contextKey("warnings")

// KubernetesWarningHandler logs warning headers from the Kubernetes API server and collects them
// in the context when a collection was added with WithWarningCollectionToContext
type KubernetesWarningHandler struct {
	sync.Mutex
}

var _ rest.WarningHandlerWithContext = &KubernetesWarningHandler{}

func NewKubernetesWarningHandler() *KubernetesWarningHandler {
	return &KubernetesWarningHandler{}
}

func (h *KubernetesWarningHandler) HandleWarningHeaderWithContext(ctx context.Context, code int, agent string, text string) {
	if text == "" {
		return
	}
	log.Ctx(ctx).Warn().Str("warning", text).Int("code", code).Str("agent", agent).Msg("Warning header encountered")

	if wrns, ok := ctx.Value(warningsContextKey).(*warnings); ok {
		h.Lock()
		defer h.Unlock()
		*wrns = append(*wrns, text)
	}
}

// WithWarningCollectionToContext adds a new warnings collection to the context.
func WithWarningCollectionToContext(ctx context.Context) context.Context {
	var wrns warnings
	return context.WithValue(ctx, warningsContextKey, &wrns)
}

// GetWarningCollectionFromContext retrieves the collection of warnings from the context.
// If no warnings are found, it returns an empty slice.
func (h *KubernetesWarningHandler) GetWarningCollectionFromContext(ctx context.Context) []string {
	if wrns, ok := ctx.Value(warningsContextKey).(*warnings); ok {
		h.Lock()
		defer h.Unlock()
		return append([]string(nil), *wrns...)
	}
	return nil
}
