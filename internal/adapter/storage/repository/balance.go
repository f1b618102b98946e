package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/kalakal/kalakal-api/internal/adapter/storage"
	"github.com/kalakal/kalakal-api/internal/core/domain"
)

type BalanceRepository struct {
	db *storage.DB
}

func NewBalanceRepository(db *storage.DB) (*BalanceRepository, error) {
	return &BalanceRepository{db: db}, nil
}

func (br *BalanceRepository) CreateBalance(ctx context.Context,
	balance *domain.SellerBalance) (*domain.SellerBalance, error) {
	statement := br.db.QueryBuilder.Insert("seller_balances").
		Columns("id", "seller_id", "bank_number", "current").
		Values(balance.ID, balance.SellerID, balance.BankNumber, balance.Current)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = br.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return balance, nil
}

func (br *BalanceRepository) GetBalanceBySeller(ctx context.Context,
	sellerID uuid.UUID) (*domain.SellerBalance, error) {
	statement := br.db.QueryBuilder.
		Select("id", "seller_id", "bank_number", "current").
		From("seller_balances").
		Where(sq.Eq{"seller_id": sellerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	balance := domain.SellerBalance{}
	err = br.db.QueryRow(ctx, sql, args...).Scan(
		&balance.ID,
		&balance.SellerID,
		&balance.BankNumber,
		&balance.Current,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &balance, nil
}

// CreditBalance stamps the tracking's credited-at marker and increments the
// seller balance in one transaction. The stamp is the idempotency guard: a
// tracking already stamped means the credit already happened on a previous
// attempt, so the caller gets ErrAlreadyCredited instead of a second credit.
func (br *BalanceRepository) CreditBalance(ctx context.Context, sellerID uuid.UUID,
	amount decimal.Decimal, trackingID uuid.UUID) (*domain.SellerBalance, error) {
	balance := domain.SellerBalance{}

	err := pgx.BeginFunc(ctx, br.db, func(tx pgx.Tx) error {
		stampSt := br.db.QueryBuilder.Update("order_tracking").
			Set("credited_at", sq.Expr("now()")).
			Where(sq.Eq{"id": trackingID}).
			Where("credited_at IS NULL")

		sql, args, err := stampSt.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAlreadyCredited
		}

		creditSt := br.db.QueryBuilder.Update("seller_balances").
			Set("current", sq.Expr("current + ?", amount)).
			Where(sq.Eq{"seller_id": sellerID}).
			Suffix("RETURNING id, seller_id, bank_number, current")

		sql, args, err = creditSt.ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(
			&balance.ID,
			&balance.SellerID,
			&balance.BankNumber,
			&balance.Current,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDataNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

func (br *BalanceRepository) CreateWithdrawal(ctx context.Context,
	withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	statement := br.db.QueryBuilder.Insert("withdrawals").
		Columns("id", "seller_id", "amount", "status", "created_at", "processed_at").
		Values(withdrawal.ID, withdrawal.SellerID, withdrawal.Amount,
			withdrawal.Status, withdrawal.CreatedAt, withdrawal.ProcessedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = br.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (br *BalanceRepository) ReadWithdrawal(ctx context.Context,
	withdrawalID uuid.UUID) (*domain.Withdrawal, error) {
	statement := br.db.QueryBuilder.
		Select("id", "seller_id", "amount", "status", "created_at", "processed_at").
		From("withdrawals").
		Where(sq.Eq{"id": withdrawalID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	withdrawal := domain.Withdrawal{}
	err = br.db.QueryRow(ctx, sql, args...).Scan(
		&withdrawal.ID,
		&withdrawal.SellerID,
		&withdrawal.Amount,
		&withdrawal.Status,
		&withdrawal.CreatedAt,
		&withdrawal.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &withdrawal, nil
}

func (br *BalanceRepository) ListWithdrawalsBySeller(ctx context.Context,
	sellerID uuid.UUID) ([]*domain.Withdrawal, error) {
	statement := br.db.QueryBuilder.
		Select("id", "seller_id", "amount", "status", "created_at", "processed_at").
		From("withdrawals").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("created_at desc")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := br.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Withdrawal, 0)
	for rows.Next() {
		withdrawal := domain.Withdrawal{}
		err := rows.Scan(
			&withdrawal.ID,
			&withdrawal.SellerID,
			&withdrawal.Amount,
			&withdrawal.Status,
			&withdrawal.CreatedAt,
			&withdrawal.ProcessedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &withdrawal)
	}

	return list, rows.Err()
}

// ApproveWithdrawal re-validates the pending status and the balance inside
// one transaction, both as conditional updates, so two concurrent approvals
// can never turn into a lost update or drive the balance negative.
func (br *BalanceRepository) ApproveWithdrawal(ctx context.Context,
	withdrawalID uuid.UUID) (*domain.SellerBalance, error) {
	balance := domain.SellerBalance{}

	err := pgx.BeginFunc(ctx, br.db, func(tx pgx.Tx) error {
		approveSt := br.db.QueryBuilder.Update("withdrawals").
			Set("status", domain.WithdrawalStatusApproved).
			Set("processed_at", sq.Expr("now()")).
			Where(sq.Eq{"id": withdrawalID, "status": domain.WithdrawalStatusPending}).
			Suffix("RETURNING seller_id, amount")

		sql, args, err := approveSt.ToSql()
		if err != nil {
			return err
		}

		var sellerID uuid.UUID
		var amount decimal.Decimal
		err = tx.QueryRow(ctx, sql, args...).Scan(&sellerID, &amount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrWithdrawalNotPending
			}
			return err
		}

		debitSt := br.db.QueryBuilder.Update("seller_balances").
			Set("current", sq.Expr("current - ?", amount)).
			Where(sq.Eq{"seller_id": sellerID}).
			Where(sq.Expr("current >= ?", amount)).
			Suffix("RETURNING id, seller_id, bank_number, current")

		sql, args, err = debitSt.ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(
			&balance.ID,
			&balance.SellerID,
			&balance.BankNumber,
			&balance.Current,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInsufficientBalance
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

func (br *BalanceRepository) RejectWithdrawal(ctx context.Context, withdrawalID uuid.UUID) error {
	statement := br.db.QueryBuilder.Update("withdrawals").
		Set("status", domain.WithdrawalStatusRejected).
		Set("processed_at", sq.Expr("now()")).
		Where(sq.Eq{"id": withdrawalID, "status": domain.WithdrawalStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := br.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWithdrawalNotPending
	}
	return nil
}
