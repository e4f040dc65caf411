package services

import (
	"strings"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// TermMatches reports whether the requested term falls inside the product's
// term range. A nil minimum imposes no lower bound; a nil or zero maximum
// imposes no upper bound.
func TermMatches(product domain.Product, requestedTermMonths int) bool {
	if product.MinTermMonths != nil && requestedTermMonths < *product.MinTermMonths {
		return false
	}
	if product.MaxTermMonths != nil && *product.MaxTermMonths > 0 && requestedTermMonths > *product.MaxTermMonths {
		return false
	}
	return true
}

// TypeMatches reports whether the product matches the requested type. A
// blank request matches everything; otherwise the comparison is exact,
// ignoring case.
func TypeMatches(product domain.Product, requestedType string) bool {
	if strings.TrimSpace(requestedType) == "" {
		return true
	}
	return strings.EqualFold(product.Type, requestedType)
}
