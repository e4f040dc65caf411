package services_test

import (
	"testing"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestClassifyInvestmentType(t *testing.T) {
	rc := services.NewRiskClassifier()

	tests := []struct {
		name     string
		typeText string
		expected domain.RiskLevel
	}{
		{"stocks are high risk", "Ação Petrobras", domain.RiskHigh},
		{"unaccented stocks", "ACOES BLUE CHIP", domain.RiskHigh},
		{"variable income", "Renda Variável", domain.RiskHigh},
		{"unaccented variable income", "renda variavel internacional", domain.RiskHigh},
		{"real estate fund acronym", "FII Logística", domain.RiskHigh},
		{"real estate fund spelled out", "Fundo Imobiliário ABC", domain.RiskHigh},
		{"multimarket fund", "Fundo Multimercado XYZ", domain.RiskMedium},
		{"generic fund", "Fundo DI", domain.RiskMedium},
		{"cdb", "CDB 100% CDI", domain.RiskLow},
		{"lci", "LCI Imobiliária", domain.RiskLow},
		{"lca", "lca agro", domain.RiskLow},
		{"treasury", "Tesouro Selic", domain.RiskLow},
		{"fixed income", "Renda Fixa Privada", domain.RiskLow},
		{"unknown defaults to low", "Debênture Incentivada", domain.RiskLow},
		{"empty defaults to low", "", domain.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rc.ClassifyInvestmentType(tt.typeText))
		})
	}
}

func TestClassifyInvestmentType_SpecificRuleBeatsGenericFund(t *testing.T) {
	rc := services.NewRiskClassifier()

	// "Fundo Imobiliário" contains both the high-risk keyword and the
	// medium-risk "fundo"; the specific rule must win.
	assert.Equal(t, domain.RiskHigh, rc.ClassifyInvestmentType("fundo imobiliário urbano"))
}

func TestClassifyRiskLabel(t *testing.T) {
	rc := services.NewRiskClassifier()

	tests := []struct {
		name     string
		label    string
		expected domain.RiskLevel
	}{
		{"low", "BAIXO", domain.RiskLow},
		{"low mixed case", "Risco Baixo", domain.RiskLow},
		{"medium accented", "MÉDIO", domain.RiskMedium},
		{"medium unaccented", "medio", domain.RiskMedium},
		{"high", "Alto", domain.RiskHigh},
		{"unknown defaults to medium", "moderado", domain.RiskMedium},
		{"empty defaults to medium", "", domain.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rc.ClassifyRiskLabel(tt.label))
		})
	}
}
