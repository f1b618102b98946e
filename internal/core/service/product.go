package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type ProductService struct {
	products port.ProductRepository
	users    port.UserRepository
	logger   *zap.Logger
}

func NewProductService(products port.ProductRepository, users port.UserRepository,
	logger *zap.Logger) (*ProductService, error) {
	return &ProductService{
		products: products,
		users:    users,
		logger:   logger,
	}, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.Stock < 0 || product.Price.IsNeg() {
		return nil, domain.ErrBadRequest
	}

	seller, err := s.users.GetUser(ctx, product.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != domain.RoleSeller {
		return nil, domain.ErrForbidden
	}

	product.ID = uuid.New()
	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.products.ReadProduct(ctx, id)
}
