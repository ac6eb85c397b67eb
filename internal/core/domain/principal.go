package domain

// AdminID is the sentinel account id carried by the bootstrap administrator.
const AdminID int64 = -1

// Principal is the identity reconstructed from a verified token.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Owner identifies the account that owns a resource. Ids of different account
// kinds live in different tables, so an owner only matches a principal of the
// same role.
type Owner struct {
	Role Role
	ID   int64
}

// UserOwner returns the owner descriptor for a user account.
func UserOwner(id int64) Owner { return Owner{Role: RoleUser, ID: id} }

// ContractorOwner returns the owner descriptor for a contractor account.
func ContractorOwner(id int64) Owner { return Owner{Role: RoleContractor, ID: id} }
