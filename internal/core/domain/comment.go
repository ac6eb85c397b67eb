package domain

import "time"

// Comment is a review left by a user on a contractor. UserID becomes nil
// when the author account is deleted.
type Comment struct {
	ID           int64     `json:"id" db:"id"`
	ContractorID int64     `json:"contractor_id" db:"contractor_id"`
	UserID       *int64    `json:"user_id" db:"user_id"`
	Comment      string    `json:"comment" db:"comment"`
	IsChanged    bool      `json:"is_changed" db:"is_changed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Owners returns the author of the comment, if it still exists.
func (c *Comment) Owners() []Owner {
	if c.UserID == nil {
		return nil
	}
	return []Owner{UserOwner(*c.UserID)}
}
