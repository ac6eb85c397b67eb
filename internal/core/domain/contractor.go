package domain

import "time"

// DefaultContractorRating is assigned to every newly registered brigade.
const DefaultContractorRating float32 = 7

// Contractor is a brigade. It holds its own credential and may be owned by
// a User through UserID.
type Contractor struct {
	ID             int64     `json:"id" db:"id"`
	UserID         *int64    `json:"user_id,omitempty" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	WorkersAmount  int       `json:"workers_amount" db:"workers_amount"`
	Rating         float32   `json:"rating" db:"rating"`
	WorkingSiteIDs []int64   `json:"working_site_ids" db:"working_site_ids"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Owners lists the accounts allowed to act on the contractor: the brigade
// account itself and, when linked, the user that owns the profile.
func (c *Contractor) Owners() []Owner {
	owners := []Owner{ContractorOwner(c.ID)}
	if c.UserID != nil {
		owners = append(owners, UserOwner(*c.UserID))
	}
	return owners
}
