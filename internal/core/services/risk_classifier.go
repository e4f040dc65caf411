package services

import (
	"strings"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// riskRule binds one lowercase keyword to the risk level it implies.
// Rules are evaluated in order; the first match wins, so broader keywords
// ("fundo") must come after the specific ones that contain them
// ("fundo imobiliário").
type riskRule struct {
	keyword string
	level   domain.RiskLevel
}

// investmentTypeRules classify free-text investment types from history
// entries. Anything unmatched defaults to low risk.
var investmentTypeRules = []riskRule{
	{"ação", domain.RiskHigh},
	{"acoes", domain.RiskHigh},
	{"renda variável", domain.RiskHigh},
	{"renda variavel", domain.RiskHigh},
	{"fii", domain.RiskHigh},
	{"fundo imobiliário", domain.RiskHigh},
	{"multimercado", domain.RiskMedium},
	{"fundo", domain.RiskMedium},
	{"cdb", domain.RiskLow},
	{"lci", domain.RiskLow},
	{"lca", domain.RiskLow},
	{"lc", domain.RiskLow},
	{"tesouro", domain.RiskLow},
	{"renda fixa", domain.RiskLow},
}

// riskLabelRules classify a product's declared risk label. Anything
// unmatched defaults to medium risk.
var riskLabelRules = []riskRule{
	{"baixo", domain.RiskLow},
	{"médio", domain.RiskMedium},
	{"medio", domain.RiskMedium},
	{"alto", domain.RiskHigh},
}

// RiskClassifier maps free text onto the shared 1-3 risk scale through two
// ordered keyword tables: one for investment types, one for product risk
// labels.
type RiskClassifier struct{}

// NewRiskClassifier creates a RiskClassifier.
func NewRiskClassifier() *RiskClassifier {
	return &RiskClassifier{}
}

// ClassifyInvestmentType maps a history entry's type text to a risk level.
// Unrecognized or empty text counts as low risk.
func (rc *RiskClassifier) ClassifyInvestmentType(typeText string) domain.RiskLevel {
	return classify(typeText, investmentTypeRules, domain.RiskLow)
}

// ClassifyRiskLabel maps a product's risk label to a risk level.
// Unrecognized or empty text counts as medium risk.
func (rc *RiskClassifier) ClassifyRiskLabel(label string) domain.RiskLevel {
	return classify(label, riskLabelRules, domain.RiskMedium)
}

func classify(text string, rules []riskRule, fallback domain.RiskLevel) domain.RiskLevel {
	normalized := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(normalized, rule.keyword) {
			return rule.level
		}
	}
	return fallback
}
