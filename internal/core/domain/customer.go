package domain

import "time"

// Customer holds the identity and the derived risk profile of a customer.
// IDs are application-assigned: a simulation that references an unknown id
// auto-provisions the customer with an UNDEFINED profile.
type Customer struct {
	ID          int64
	RiskProfile RiskProfile
	CreatedAt   time.Time
}
