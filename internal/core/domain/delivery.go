package domain

import (
	"time"

	"github.com/google/uuid"
)

// Delivery binds one rider to one shipped order. The order, tracking and
// rider bindings are immutable after creation; only the delivered flag and
// proof reference are mutated, exactly once.
type Delivery struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	TrackingID uuid.UUID
	RiderID    uuid.UUID
	Delivered  bool
	// ProofImage is an opaque reference to the captured proof-of-delivery
	// image, empty until delivered.
	ProofImage  string
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
