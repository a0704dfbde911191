package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/usecase"
	"health-admin-backoffice/pkg/response"
	"health-admin-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type stubPayerUsecase struct {
	registerFn           func(ctx context.Context, req *dto.RegisterPayerRequest) (*dto.PayerResponse, error)
	getPayersFn          func(ctx context.Context) (*dto.PayerListResponse, error)
	getPayerFn           func(ctx context.Context, id uuid.UUID) (*dto.PayerResponse, error)
	updatePayerFn        func(ctx context.Context, id uuid.UUID, req *dto.UpdatePayerRequest) (*dto.PayerResponse, error)
	getCredentialFn      func(ctx context.Context, payerID uuid.UUID) (*dto.CredentialResponse, error)
	registerCredentialFn func(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error)
}

func (s *stubPayerUsecase) Register(ctx context.Context, req *dto.RegisterPayerRequest) (*dto.PayerResponse, error) {
	return s.registerFn(ctx, req)
}
func (s *stubPayerUsecase) GetPayers(ctx context.Context) (*dto.PayerListResponse, error) {
	return s.getPayersFn(ctx)
}
func (s *stubPayerUsecase) GetPayer(ctx context.Context, id uuid.UUID) (*dto.PayerResponse, error) {
	return s.getPayerFn(ctx, id)
}
func (s *stubPayerUsecase) UpdatePayer(ctx context.Context, id uuid.UUID, req *dto.UpdatePayerRequest) (*dto.PayerResponse, error) {
	return s.updatePayerFn(ctx, id, req)
}
func (s *stubPayerUsecase) GetCredential(ctx context.Context, payerID uuid.UUID) (*dto.CredentialResponse, error) {
	return s.getCredentialFn(ctx, payerID)
}
func (s *stubPayerUsecase) RegisterCredential(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error) {
	return s.registerCredentialFn(ctx, payerID, req)
}

func TestRegisterPayer(t *testing.T) {
	stub := &stubPayerUsecase{
		registerFn: func(ctx context.Context, req *dto.RegisterPayerRequest) (*dto.PayerResponse, error) {
			return &dto.PayerResponse{ID: uuid.New(), PayerName: req.PayerName, Status: "ACTIVE"}, nil
		},
	}
	h := NewPayerHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.RegisterPayer, map[string]interface{}{
		"payer_name": "Daman",
		"email":      "claims@daman.ae",
		"status":     "active",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterPayerInvalidEmail(t *testing.T) {
	h := NewPayerHandler(&stubPayerUsecase{}, validator.NewValidator())

	rec := postJSON(t, h.RegisterPayer, map[string]interface{}{
		"payer_name": "Daman",
		"email":      "not-an-email",
		"status":     "active",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetCredentialNotRegistered(t *testing.T) {
	stub := &stubPayerUsecase{
		getCredentialFn: func(ctx context.Context, payerID uuid.UUID) (*dto.CredentialResponse, error) {
			return nil, usecase.ErrCredentialNotRegistered
		},
	}
	h := NewPayerHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodGet, "/payer/"+id+"/ha-credential", map[string]string{"id": id}, nil)
	rec := httptest.NewRecorder()
	h.GetCredential(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Payer has no registered credential" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegisterCredentialReservedUser(t *testing.T) {
	stub := &stubPayerUsecase{
		registerCredentialFn: func(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error) {
			return nil, usecase.ErrReservedCredentialUser
		},
	}
	h := NewPayerHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPost, "/payer/"+id+"/ha-credential", map[string]string{"id": id}, map[string]interface{}{
		"health_authority_id": uuid.New().String(),
		"user_name":           "NO_CREDENTIAL",
	})
	rec := httptest.NewRecorder()
	h.RegisterCredential(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterCredentialConflict(t *testing.T) {
	stub := &stubPayerUsecase{
		registerCredentialFn: func(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error) {
			return nil, usecase.ErrCredentialExists
		},
	}
	h := NewPayerHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPost, "/payer/"+id+"/ha-credential", map[string]string{"id": id}, map[string]interface{}{
		"health_authority_id": uuid.New().String(),
		"user_name":           "dha-user",
	})
	rec := httptest.NewRecorder()
	h.RegisterCredential(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestGetCredentialInvalidPayerID(t *testing.T) {
	h := NewPayerHandler(&stubPayerUsecase{}, validator.NewValidator())

	req := muxRequest(t, http.MethodGet, "/payer/abc/ha-credential", map[string]string{"id": "abc"}, nil)
	rec := httptest.NewRecorder()
	h.GetCredential(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
