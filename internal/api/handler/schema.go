package handler

import "github.com/buildservice/build-service/internal/core/domain"

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,loose_email"`
	Password string `json:"password" validate:"required"`
	// Role is optional: "admin", "user" or "contractor", case-insensitive.
	Role string `json:"role,omitempty"`
}

type loginResponse struct {
	ID    int64       `json:"id"`
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// --- Users ---

type registerUserRequest struct {
	Name     string `json:"name"     validate:"required,notblank,min=2,max=50"`
	Email    string `json:"email"    validate:"required,loose_email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateUserRequest struct {
	Name  string `json:"name"  validate:"required,notblank,min=2,max=50"`
	Email string `json:"email" validate:"required,loose_email,max=255"`
}

// --- Contractors ---

type registerContractorRequest struct {
	Name          string `json:"name"           validate:"required,notblank,min=2,max=50"`
	Email         string `json:"email"          validate:"required,loose_email,max=255"`
	Password      string `json:"password"       validate:"required,min=8"`
	WorkersAmount int    `json:"workers_amount" validate:"required,gte=1"`
}

type contractorForUserRequest struct {
	Name          string `json:"name"           validate:"required,notblank,min=2,max=50"`
	WorkersAmount int    `json:"workers_amount" validate:"required,gte=1"`
}

type updateContractorRequest struct {
	Name          string  `json:"name"           validate:"required,notblank,min=2,max=50"`
	Email         string  `json:"email"          validate:"required,loose_email,max=255"`
	WorkersAmount int     `json:"workers_amount" validate:"required,gte=1"`
	Rating        float32 `json:"rating"         validate:"gte=0,lte=10"`
}

// --- Comments ---

type commentRequest struct {
	Comment string `json:"comment" validate:"required,notblank,max=2000"`
}

// --- Working sites ---

type createWorkingSiteRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
	// UserID defaults to the caller.
	UserID int64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

type updateWorkingSiteRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	// ContractorIDs replaces the assigned brigades when present; [] clears them.
	ContractorIDs []int64 `json:"contractor_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// --- Shared ---

type errorResponse struct {
	Error string `json:"error"`
}
