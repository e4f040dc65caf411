package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommendByProfile_NormalizesLabel(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewRecommendationService(mockRepo)

	expected := []domain.Product{{ID: 1, Name: "CDB 100% CDI"}}
	mockRepo.On("ListProductsByRecommendedProfile", mock.Anything, "CONSERVATIVE").Return(expected, nil).Times(3)

	for _, label := range []string{"CONSERVATIVE", "conservative", "  Conservative  "} {
		products, err := svc.RecommendByProfile(context.Background(), label)
		require.NoError(t, err)
		assert.Equal(t, expected, products)
	}

	mockRepo.AssertExpectations(t)
}

func TestRecommendByProfile_BlankLabel(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewRecommendationService(mockRepo)

	products, err := svc.RecommendByProfile(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertNotCalled(t, "ListProductsByRecommendedProfile")
}

func TestRecommendByProfile_UnknownLabelIsJustEmpty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewRecommendationService(mockRepo)

	mockRepo.On("ListProductsByRecommendedProfile", mock.Anything, "WHATEVER").Return([]domain.Product{}, nil).Once()

	products, err := svc.RecommendByProfile(context.Background(), "whatever")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRecommendByProfile_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := services.NewRecommendationService(mockRepo)

	mockRepo.On("ListProductsByRecommendedProfile", mock.Anything, "MODERATE").Return(nil, errors.New("db down")).Once()

	_, err := svc.RecommendByProfile(context.Background(), "moderate")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}
