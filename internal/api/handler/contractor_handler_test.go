package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

type stubContractorService struct {
	ports.ContractorService
	createForUserFn func(ctx context.Context, p domain.Principal, in ports.CreateContractorForUserInput) (*domain.Contractor, error)
	updateFn        func(ctx context.Context, p domain.Principal, id int64, in ports.UpdateContractorInput) (*domain.Contractor, error)
}

func (s *stubContractorService) CreateForUser(ctx context.Context, p domain.Principal, in ports.CreateContractorForUserInput) (*domain.Contractor, error) {
	return s.createForUserFn(ctx, p, in)
}

func (s *stubContractorService) Update(ctx context.Context, p domain.Principal, id int64, in ports.UpdateContractorInput) (*domain.Contractor, error) {
	return s.updateFn(ctx, p, id, in)
}

func TestContractorHandler_CreateForUser(t *testing.T) {
	stub := &stubContractorService{
		createForUserFn: func(_ context.Context, p domain.Principal, in ports.CreateContractorForUserInput) (*domain.Contractor, error) {
			if p != userCaller || in.Name != "Crew" || in.WorkersAmount != 4 {
				t.Fatalf("unexpected args: %+v %+v", p, in)
			}
			return &domain.Contractor{ID: 8, Name: in.Name}, nil
		},
	}
	c, rec := newContext(t, http.MethodPost, "/contractors/for-user", `{"name":"Crew","workers_amount":4}`, &userCaller)

	if err := NewContractorHandler(stub).CreateForUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContractorHandler_Update_RatingOutOfRange(t *testing.T) {
	c, _ := newContext(t, http.MethodPut, "/contractors/8",
		`{"name":"Crew","email":"crew@site.io","workers_amount":4,"rating":11}`, &adminCaller)
	withParam(c, "contractorId", "8")

	err := NewContractorHandler(&stubContractorService{}).Update(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestContractorHandler_Update(t *testing.T) {
	stub := &stubContractorService{
		updateFn: func(_ context.Context, _ domain.Principal, id int64, in ports.UpdateContractorInput) (*domain.Contractor, error) {
			if id != 8 || in.Rating != 9.5 || in.Email != "crew@site.io" {
				t.Fatalf("unexpected args: %d %+v", id, in)
			}
			return &domain.Contractor{ID: 8, Rating: in.Rating}, nil
		},
	}
	c, rec := newContext(t, http.MethodPut, "/contractors/8",
		`{"name":"Crew","email":"crew@site.io","workers_amount":4,"rating":9.5}`, &adminCaller)
	withParam(c, "contractorId", "8")

	if err := NewContractorHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
