package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock

// TrackingCache is an injected read-model cache for tracking lookups.
// Entries expire on a TTL set by the adapter; a miss is reported as
// domain.ErrDataNotFound.
type TrackingCache interface {
	GetTracking(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error)
	SetTracking(ctx context.Context, tracking *domain.OrderTracking) error
	InvalidateTracking(ctx context.Context, orderID uuid.UUID) error
}
