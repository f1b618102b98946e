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

type ProductRepository struct {
	db *storage.DB
}

func NewProductRepository(db *storage.DB) (*ProductRepository, error) {
	return &ProductRepository{db: db}, nil
}

func (pr *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := pr.db.QueryBuilder.Insert("products").
		Columns("id", "seller_id", "name", "price", "stock").
		Values(product.ID, product.SellerID, product.Name, product.Price, product.Stock)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = pr.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return product, nil
}

func (pr *ProductRepository) ReadProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	statement := pr.db.QueryBuilder.
		Select("id", "seller_id", "name", "price", "stock").
		From("products").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}
	err = pr.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

// DecrementStock reserves stock with a single conditional update, so
// concurrent accepts against the same product can never over-allocate it.
func (pr *ProductRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	statement := pr.db.QueryBuilder.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := pr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Missing product and short stock both land here; distinguish them.
		if _, err := pr.ReadProduct(ctx, productID); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}

	return nil
}
