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

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

var orderColumns = []string{"id", "buyer_id", "seller_id", "total_price",
	"delivery_address", "seller_address", "status", "created_at"}

func (or *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		orderSt := or.db.QueryBuilder.Insert("orders").
			Columns(orderColumns...).
			Values(order.ID, order.BuyerID, order.SellerID, order.TotalPrice,
				order.DeliveryAddress, order.SellerAddress, order.Status, order.CreatedAt)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := or.db.QueryBuilder.Insert("order_items").
				Columns("order_id", "product_id", "quantity", "price", "status").
				Values(order.ID, item.ProductID, item.Quantity, item.Price, item.Status)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (or *OrderRepository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.BuyerID,
		&order.SellerID,
		&order.TotalPrice,
		&order.DeliveryAddress,
		&order.SellerAddress,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = or.readItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (or *OrderRepository) readItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("product_id", "quantity", "price", "status").
		From("order_items").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price, &item.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (or *OrderRepository) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error) {
	return or.listOrders(ctx, sq.Eq{"seller_id": sellerID})
}

func (or *OrderRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error) {
	return or.listOrders(ctx, sq.Eq{"buyer_id": buyerID})
}

func (or *OrderRepository) listOrders(ctx context.Context, where sq.Eq) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at desc")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&order.SellerID,
			&order.TotalPrice,
			&order.DeliveryAddress,
			&order.SellerAddress,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = or.readItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

// UpdateOrderItems writes the item statuses and the derived order status in
// one transaction, keeping the order consistent with its items.
func (or *OrderRepository) UpdateOrderItems(ctx context.Context, order *domain.Order) error {
	return pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		for _, item := range order.Items {
			itemSt := or.db.QueryBuilder.Update("order_items").
				Set("status", item.Status).
				Where(sq.Eq{"order_id": order.ID, "product_id": item.ProductID})

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		orderSt := or.db.QueryBuilder.Update("orders").
			Set("status", order.Status).
			Where(sq.Eq{"id": order.ID})

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID,
	status domain.OrderStatus) error {
	statement := or.db.QueryBuilder.Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

// ListCompletedUncredited finds completed orders whose settlement never got
// past the credit step.
func (or *OrderRepository) ListCompletedUncredited(ctx context.Context) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("o.id", "o.buyer_id", "o.seller_id", "o.total_price",
			"o.delivery_address", "o.seller_address", "o.status", "o.created_at").
		From("orders o").
		Join("order_tracking t ON t.order_id = o.id").
		Where(sq.Eq{"o.status": domain.OrderStatusCompleted}).
		Where("t.credited_at IS NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&order.SellerID,
			&order.TotalPrice,
			&order.DeliveryAddress,
			&order.SellerAddress,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	return list, rows.Err()
}
