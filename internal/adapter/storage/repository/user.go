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

type UserRepository struct {
	db *storage.DB
}

func NewUserRepository(db *storage.DB) (*UserRepository, error) {
	return &UserRepository{db: db}, nil
}

func (ur *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var loginCode any
	if user.LoginCode != "" {
		loginCode = user.LoginCode
	}

	statement := ur.db.QueryBuilder.Insert("users").
		Columns("id", "login", "password", "role", "address", "login_code").
		Values(user.ID, user.Login, user.Password, user.Role, user.Address, loginCode)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = ur.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return user, nil
}

func (ur *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	statement := ur.db.QueryBuilder.
		Select("id", "login", "password", "role", "address", "coalesce(login_code, '')").
		From("users").
		Where(sq.Eq{"id": id})

	return ur.scanUser(ctx, statement)
}

func (ur *UserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := ur.db.QueryBuilder.
		Select("id", "login", "password", "role", "address", "coalesce(login_code, '')").
		From("users").
		Where(sq.Eq{"login": login})

	return ur.scanUser(ctx, statement)
}

func (ur *UserRepository) scanUser(ctx context.Context, statement sq.SelectBuilder) (*domain.User, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	err = ur.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Role,
		&user.Address,
		&user.LoginCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
