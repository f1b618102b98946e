package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kalakal/kalakal-api/internal/adapter/storage"
	"github.com/kalakal/kalakal-api/internal/core/domain"
)

type TrackingRepository struct {
	db *storage.DB
}

func NewTrackingRepository(db *storage.DB) (*TrackingRepository, error) {
	return &TrackingRepository{db: db}, nil
}

var trackingColumns = []string{"id", "order_id", "code", "payment_status",
	"credited_at", "created_at"}

func (tr *TrackingRepository) CreateTracking(ctx context.Context,
	tracking *domain.OrderTracking) (*domain.OrderTracking, error) {
	statement := tr.db.QueryBuilder.Insert("order_tracking").
		Columns(trackingColumns...).
		Values(tracking.ID, tracking.OrderID, tracking.Code,
			tracking.PaymentStatus, tracking.CreditedAt, tracking.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = tr.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return tracking, nil
}

func (tr *TrackingRepository) GetTrackingByOrder(ctx context.Context,
	orderID uuid.UUID) (*domain.OrderTracking, error) {
	return tr.getTracking(ctx, sq.Eq{"order_id": orderID})
}

func (tr *TrackingRepository) GetTrackingByCode(ctx context.Context,
	code string) (*domain.OrderTracking, error) {
	return tr.getTracking(ctx, sq.Eq{"code": code})
}

func (tr *TrackingRepository) getTracking(ctx context.Context, where sq.Eq) (*domain.OrderTracking, error) {
	statement := tr.db.QueryBuilder.
		Select(trackingColumns...).
		From("order_tracking").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tracking := domain.OrderTracking{}
	err = tr.db.QueryRow(ctx, sql, args...).Scan(
		&tracking.ID,
		&tracking.OrderID,
		&tracking.Code,
		&tracking.PaymentStatus,
		&tracking.CreditedAt,
		&tracking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &tracking, nil
}

// MarkPaid overwrites the payment status to Paid. Re-marking a Paid record
// affects a row all the same, so the operation stays a no-op success.
func (tr *TrackingRepository) MarkPaid(ctx context.Context, code string) error {
	statement := tr.db.QueryBuilder.Update("order_tracking").
		Set("payment_status", domain.PaymentStatusPaid).
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := tr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (tr *TrackingRepository) ListCreditedUnpaid(ctx context.Context) ([]*domain.OrderTracking, error) {
	statement := tr.db.QueryBuilder.
		Select(trackingColumns...).
		From("order_tracking").
		Where(sq.Eq{"payment_status": domain.PaymentStatusPending}).
		Where("credited_at IS NOT NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OrderTracking, 0)
	for rows.Next() {
		tracking := domain.OrderTracking{}
		err := rows.Scan(
			&tracking.ID,
			&tracking.OrderID,
			&tracking.Code,
			&tracking.PaymentStatus,
			&tracking.CreditedAt,
			&tracking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &tracking)
	}

	return list, rows.Err()
}
