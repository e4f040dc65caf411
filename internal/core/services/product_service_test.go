package services_test

import (
	"context"
	"testing"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewProductService(mockRepo)

	mockRepo.On("SaveProduct", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "CDB 110% CDI" && p.RecommendedProfile == "MODERATE"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Product).ID = 42
	}).Return(nil).Once()

	product, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:               "  CDB 110% CDI ",
		Type:               "CDB",
		AnnualReturnRate:   floatPtr(0.14),
		RiskLabel:          "BAIXO",
		MinTermMonths:      intPtr(6),
		MaxTermMonths:      intPtr(24),
		RecommendedProfile: "moderate",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "CDB 110% CDI", product.Name)
	mockRepo.AssertExpectations(t)
}

func TestCreateProduct_InvertedTermRange(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewProductService(mockRepo)

	_, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:             "CDB",
		Type:             "CDB",
		AnnualReturnRate: floatPtr(0.14),
		RiskLabel:        "BAIXO",
		MinTermMonths:    intPtr(24),
		MaxTermMonths:    intPtr(6),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "SaveProduct")
}

func TestCreateProduct_ZeroMaxTermIsUnbounded(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewProductService(mockRepo)

	mockRepo.On("SaveProduct", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

	_, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:             "Fundo Aberto",
		Type:             "Fundo",
		AnnualReturnRate: floatPtr(0.18),
		RiskLabel:        "ALTO",
		MinTermMonths:    intPtr(12),
		MaxTermMonths:    intPtr(0),
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateProduct_BlankName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewProductService(mockRepo)

	_, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:             "   ",
		Type:             "CDB",
		AnnualReturnRate: floatPtr(0.1),
		RiskLabel:        "BAIXO",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateProduct_DuplicatePassesThrough(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewProductService(mockRepo)

	mockRepo.On("SaveProduct", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:             "CDB 100% CDI",
		Type:             "CDB",
		AnnualReturnRate: floatPtr(0.13),
		RiskLabel:        "BAIXO",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestListCustomerHistory_InvalidID(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	svc := services.NewHistoryService(mockRepo)

	_, err := svc.ListCustomerHistory(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "ListHistoryByCustomer")
}

func TestListCustomerHistory_UnknownCustomerIsEmpty(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	svc := services.NewHistoryService(mockRepo)

	mockRepo.On("ListHistoryByCustomer", mock.Anything, int64(123)).Return([]domain.HistoryEntry{}, nil).Once()

	entries, err := svc.ListCustomerHistory(context.Background(), 123)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
