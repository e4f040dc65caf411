package services_test

import (
	"testing"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseProduct_EmptyCandidates(t *testing.T) {
	_, err := services.ChooseProduct(nil, 12)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestChooseProduct_SingleCandidate(t *testing.T) {
	only := domain.Product{ID: 7, Name: "CDB"}

	chosen, err := services.ChooseProduct([]domain.Product{only}, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(7), chosen.ID)
}

func TestChooseProduct_ShortHorizonPrefersLiquidity(t *testing.T) {
	liquid := domain.Product{ID: 1, AnnualReturnRate: floatPtr(0.10), LiquidityDays: intPtr(1)}
	illiquid := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.18), LiquidityDays: intPtr(90)}

	chosen, err := services.ChooseProduct([]domain.Product{illiquid, liquid}, 12)

	require.NoError(t, err)
	assert.Equal(t, int64(1), chosen.ID)
}

func TestChooseProduct_ShortHorizonYieldBreaksLiquidityTie(t *testing.T) {
	lowYield := domain.Product{ID: 1, AnnualReturnRate: floatPtr(0.10), LiquidityDays: intPtr(30)}
	highYield := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.16), LiquidityDays: intPtr(30)}

	chosen, err := services.ChooseProduct([]domain.Product{lowYield, highYield}, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseProduct_ShortHorizonUnknownLiquidityLast(t *testing.T) {
	unknown := domain.Product{ID: 1, AnnualReturnRate: floatPtr(0.20)}
	known := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.10), LiquidityDays: intPtr(90)}

	chosen, err := services.ChooseProduct([]domain.Product{unknown, known}, 12)

	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseProduct_LongHorizonPrefersYield(t *testing.T) {
	liquid := domain.Product{ID: 1, AnnualReturnRate: floatPtr(0.10), LiquidityDays: intPtr(1)}
	illiquid := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.18), LiquidityDays: intPtr(90)}

	chosen, err := services.ChooseProduct([]domain.Product{liquid, illiquid}, 36)

	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseProduct_LongHorizonMissingRateCountsAsZero(t *testing.T) {
	noRate := domain.Product{ID: 1, LiquidityDays: intPtr(1)}
	lowRate := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.01), LiquidityDays: intPtr(90)}

	chosen, err := services.ChooseProduct([]domain.Product{noRate, lowRate}, 24)

	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseProduct_LongHorizonLiquidityBreaksYieldTie(t *testing.T) {
	slow := domain.Product{ID: 1, AnnualReturnRate: floatPtr(0.14), LiquidityDays: intPtr(60)}
	fast := domain.Product{ID: 2, AnnualReturnRate: floatPtr(0.14), LiquidityDays: intPtr(5)}

	chosen, err := services.ChooseProduct([]domain.Product{slow, fast}, 24)

	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseProduct_DoesNotMutateInput(t *testing.T) {
	candidates := []domain.Product{
		{ID: 1, AnnualReturnRate: floatPtr(0.10), LiquidityDays: intPtr(90)},
		{ID: 2, AnnualReturnRate: floatPtr(0.18), LiquidityDays: intPtr(1)},
	}

	_, err := services.ChooseProduct(candidates, 12)

	require.NoError(t, err)
	assert.Equal(t, int64(1), candidates[0].ID)
	assert.Equal(t, int64(2), candidates[1].ID)
}

func TestFilterByProfile(t *testing.T) {
	low := domain.Product{ID: 1, RiskLabel: "BAIXO"}
	medium := domain.Product{ID: 2, RiskLabel: "MÉDIO"}
	high := domain.Product{ID: 3, RiskLabel: "ALTO"}
	catalog := []domain.Product{low, medium, high}

	rc := services.NewRiskClassifier()

	conservative := rc.FilterByProfile(catalog, domain.ProfileConservative)
	require.Len(t, conservative, 1)
	assert.Equal(t, int64(1), conservative[0].ID)

	moderate := rc.FilterByProfile(catalog, domain.ProfileModerate)
	require.Len(t, moderate, 2)

	aggressive := rc.FilterByProfile(catalog, domain.ProfileAggressive)
	assert.Len(t, aggressive, 3)
}

func TestFilterByProfile_UnknownProfileReturnsEmpty(t *testing.T) {
	catalog := []domain.Product{{ID: 1, RiskLabel: "BAIXO"}}

	rc := services.NewRiskClassifier()

	assert.Empty(t, rc.FilterByProfile(catalog, domain.ProfileUndefined))
	assert.Empty(t, rc.FilterByProfile(catalog, domain.RiskProfile("WHATEVER")))
}

func TestIsProfileCompatible(t *testing.T) {
	rc := services.NewRiskClassifier()
	high := domain.Product{RiskLabel: "ALTO"}
	low := domain.Product{RiskLabel: "BAIXO"}

	assert.False(t, rc.IsProfileCompatible(high, domain.ProfileConservative))
	assert.True(t, rc.IsProfileCompatible(low, domain.ProfileConservative))
	assert.True(t, rc.IsProfileCompatible(high, domain.ProfileAggressive))

	// An unknown profile never blocks a product.
	assert.True(t, rc.IsProfileCompatible(high, domain.ProfileUndefined))
}

func TestMaxAllowedRisk(t *testing.T) {
	assert.Equal(t, domain.RiskLow, services.MaxAllowedRisk(domain.ProfileConservative))
	assert.Equal(t, domain.RiskMedium, services.MaxAllowedRisk(domain.ProfileModerate))
	assert.Equal(t, domain.RiskHigh, services.MaxAllowedRisk(domain.ProfileAggressive))
	assert.Equal(t, domain.RiskMedium, services.MaxAllowedRisk(domain.ProfileUndefined))
}
