package models

import "time"

// Customer is the database shape of a customer. The id is assigned by the
// application, not by a sequence.
type Customer struct {
	ID          int64     `json:"id"`
	RiskProfile string    `json:"riskProfile"`
	CreatedAt   time.Time `json:"createdAt"`
}
