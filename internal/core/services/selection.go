package services

import (
	"fmt"
	"sort"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// shortHorizonMonths is the term at or below which liquidity outranks yield.
const shortHorizonMonths = 12

// ChooseProduct picks one product from a non-empty candidate set. Short
// horizons prefer the most liquid product (fewest liquidity days, unknown
// liquidity last) with yield as tie-break; long horizons prefer the highest
// yield (missing rates count as zero) with liquidity as tie-break.
func ChooseProduct(candidates []domain.Product, requestedTermMonths int) (domain.Product, error) {
	if len(candidates) == 0 {
		return domain.Product{}, fmt.Errorf("%w: no candidate products to choose from", apperrors.ErrInternal)
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	ranked := make([]domain.Product, len(candidates))
	copy(ranked, candidates)

	if requestedTermMonths <= shortHorizonMonths {
		sort.SliceStable(ranked, func(i, j int) bool {
			if c := compareLiquidity(ranked[i], ranked[j]); c != 0 {
				return c < 0
			}
			return ranked[i].AnnualReturnRateOrZero() > ranked[j].AnnualReturnRateOrZero()
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			ri, rj := ranked[i].AnnualReturnRateOrZero(), ranked[j].AnnualReturnRateOrZero()
			if ri != rj {
				return ri > rj
			}
			return compareLiquidity(ranked[i], ranked[j]) < 0
		})
	}

	return ranked[0], nil
}

// compareLiquidity orders by liquidity days ascending, products without a
// liquidity figure last.
func compareLiquidity(a, b domain.Product) int {
	switch {
	case a.LiquidityDays == nil && b.LiquidityDays == nil:
		return 0
	case a.LiquidityDays == nil:
		return 1
	case b.LiquidityDays == nil:
		return -1
	case *a.LiquidityDays < *b.LiquidityDays:
		return -1
	case *a.LiquidityDays > *b.LiquidityDays:
		return 1
	default:
		return 0
	}
}
