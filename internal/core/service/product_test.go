package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port/mock"
	"github.com/kalakal/kalakal-api/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProductService_CreateProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()
	seller := &domain.User{ID: sellerID, Role: domain.RoleSeller}

	t.Run("seller lists a product", func(t *testing.T) {
		products := mock.NewMockProductRepository(mockCtrl)
		users := mock.NewMockUserRepository(mockCtrl)

		users.EXPECT().GetUser(gomock.Any(), sellerID).Return(seller, nil)
		products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Product) (*domain.Product, error) {
				return p, nil
			})

		s, err := service.NewProductService(products, users, zap.NewNop())
		require.NoError(t, err)

		product, err := s.CreateProduct(context.Background(), &domain.Product{
			SellerID: sellerID,
			Name:     "dried mango",
			Price:    decimal.MustNew(100, 0),
			Stock:    10,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
	})

	t.Run("buyers cannot list products", func(t *testing.T) {
		products := mock.NewMockProductRepository(mockCtrl)
		users := mock.NewMockUserRepository(mockCtrl)
		buyerID := uuid.New()

		users.EXPECT().GetUser(gomock.Any(), buyerID).
			Return(&domain.User{ID: buyerID, Role: domain.RoleBuyer}, nil)

		s, err := service.NewProductService(products, users, zap.NewNop())
		require.NoError(t, err)

		_, err = s.CreateProduct(context.Background(), &domain.Product{
			SellerID: buyerID,
			Name:     "dried mango",
			Price:    decimal.MustNew(100, 0),
			Stock:    10,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		products := mock.NewMockProductRepository(mockCtrl)
		users := mock.NewMockUserRepository(mockCtrl)

		s, err := service.NewProductService(products, users, zap.NewNop())
		require.NoError(t, err)

		_, err = s.CreateProduct(context.Background(), &domain.Product{
			SellerID: sellerID,
			Price:    decimal.MustNew(100, 0),
			Stock:    10,
		})
		assert.ErrorIs(t, err, domain.ErrBadRequest)

		_, err = s.CreateProduct(context.Background(), &domain.Product{
			SellerID: sellerID,
			Name:     "dried mango",
			Price:    decimal.MustNew(-100, 0),
			Stock:    10,
		})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}
