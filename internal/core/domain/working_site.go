package domain

import "time"

// WorkingSite is a construction site owned by a user. Contractors are linked
// to it through ContractorIDs.
type WorkingSite struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	UserID        int64     `json:"user_id" db:"user_id"`
	ContractorIDs []int64   `json:"contractor_ids" db:"contractor_ids"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
