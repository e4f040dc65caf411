package domain

// RiskLevel is the 1-3 numeric classification derived from a product's or an
// investment type's textual description.
type RiskLevel int

const (
	RiskLow RiskLevel = iota + 1
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// RiskProfile is a customer's declared categorical risk tolerance.
type RiskProfile string

const (
	ProfileUndefined    RiskProfile = "UNDEFINED"
	ProfileConservative RiskProfile = "CONSERVATIVE"
	ProfileModerate     RiskProfile = "MODERATE"
	ProfileAggressive   RiskProfile = "AGGRESSIVE"
)

// IsKnown reports whether the profile is one of the three declared tolerance
// levels. UNDEFINED and free text both count as unknown.
func (p RiskProfile) IsKnown() bool {
	switch p {
	case ProfileConservative, ProfileModerate, ProfileAggressive:
		return true
	}
	return false
}

// RiskAssessment is the outcome of scoring a customer's investment history.
type RiskAssessment struct {
	CustomerID  int64
	Profile     string
	Score       int
	Description string
}

// Classification labels produced by the risk scoring engine.
const (
	ClassificationInvalid      = "Invalid"
	ClassificationUndefined    = "Undefined"
	ClassificationConservative = "Conservative"
	ClassificationModerate     = "Moderate"
	ClassificationAggressive   = "Aggressive"
)

// ProfileFromClassification maps a scoring classification onto the customer
// profile that should be persisted. Invalid and Undefined assessments map to
// nothing and must leave the customer untouched.
func ProfileFromClassification(classification string) (RiskProfile, bool) {
	switch classification {
	case ClassificationConservative:
		return ProfileConservative, true
	case ClassificationModerate:
		return ProfileModerate, true
	case ClassificationAggressive:
		return ProfileAggressive, true
	default:
		return ProfileUndefined, false
	}
}
