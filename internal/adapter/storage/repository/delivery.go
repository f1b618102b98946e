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

type DeliveryRepository struct {
	db *storage.DB
}

func NewDeliveryRepository(db *storage.DB) (*DeliveryRepository, error) {
	return &DeliveryRepository{db: db}, nil
}

var deliveryColumns = []string{"id", "order_id", "tracking_id", "rider_id",
	"delivered", "proof_image", "created_at", "delivered_at"}

func (dr *DeliveryRepository) CreateDelivery(ctx context.Context,
	delivery *domain.Delivery) (*domain.Delivery, error) {
	statement := dr.db.QueryBuilder.Insert("deliveries").
		Columns(deliveryColumns...).
		Values(delivery.ID, delivery.OrderID, delivery.TrackingID, delivery.RiderID,
			delivery.Delivered, delivery.ProofImage, delivery.CreatedAt, delivery.DeliveredAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = dr.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return delivery, nil
}

func (dr *DeliveryRepository) ReadDelivery(ctx context.Context,
	deliveryID uuid.UUID) (*domain.Delivery, error) {
	return dr.getDelivery(ctx, sq.Eq{"id": deliveryID})
}

func (dr *DeliveryRepository) GetDeliveryByOrder(ctx context.Context,
	orderID uuid.UUID) (*domain.Delivery, error) {
	return dr.getDelivery(ctx, sq.Eq{"order_id": orderID})
}

func (dr *DeliveryRepository) getDelivery(ctx context.Context, where sq.Eq) (*domain.Delivery, error) {
	statement := dr.db.QueryBuilder.
		Select(deliveryColumns...).
		From("deliveries").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	delivery := domain.Delivery{}
	err = dr.db.QueryRow(ctx, sql, args...).Scan(
		&delivery.ID,
		&delivery.OrderID,
		&delivery.TrackingID,
		&delivery.RiderID,
		&delivery.Delivered,
		&delivery.ProofImage,
		&delivery.CreatedAt,
		&delivery.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &delivery, nil
}

// MarkDelivered flips the delivered flag once. The conditional update keeps
// the false-to-true transition one way even under concurrent captures.
func (dr *DeliveryRepository) MarkDelivered(ctx context.Context, deliveryID uuid.UUID,
	proofImage string) error {
	statement := dr.db.QueryBuilder.Update("deliveries").
		Set("delivered", true).
		Set("proof_image", proofImage).
		Set("delivered_at", sq.Expr("now()")).
		Where(sq.Eq{"id": deliveryID, "delivered": false})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := dr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := dr.ReadDelivery(ctx, deliveryID); err != nil {
			return err
		}
		return domain.ErrAlreadyDelivered
	}
	return nil
}

func (dr *DeliveryRepository) ListUndeliveredByRider(ctx context.Context,
	riderID uuid.UUID) ([]*domain.Delivery, error) {
	statement := dr.db.QueryBuilder.
		Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"rider_id": riderID, "delivered": false}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := dr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Delivery, 0)
	for rows.Next() {
		delivery := domain.Delivery{}
		err := rows.Scan(
			&delivery.ID,
			&delivery.OrderID,
			&delivery.TrackingID,
			&delivery.RiderID,
			&delivery.Delivered,
			&delivery.ProofImage,
			&delivery.CreatedAt,
			&delivery.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &delivery)
	}

	return list, rows.Err()
}
