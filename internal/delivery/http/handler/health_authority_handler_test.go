package handler

import (
	"bytes"
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
	"github.com/gorilla/mux"
)

type stubHealthAuthorityUsecase struct {
	createFn         func(ctx context.Context, req *dto.CreateHealthAuthoritiesRequest) ([]dto.HealthAuthorityResponse, error)
	getAllFn         func(ctx context.Context) (*dto.HealthAuthorityListResponse, error)
	getFn            func(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error)
	deactivateFn     func(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error)
	updateSettingsFn func(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error)
}

func (s *stubHealthAuthorityUsecase) CreateAuthorities(ctx context.Context, req *dto.CreateHealthAuthoritiesRequest) ([]dto.HealthAuthorityResponse, error) {
	return s.createFn(ctx, req)
}
func (s *stubHealthAuthorityUsecase) GetAuthorities(ctx context.Context) (*dto.HealthAuthorityListResponse, error) {
	return s.getAllFn(ctx)
}
func (s *stubHealthAuthorityUsecase) GetAuthority(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error) {
	return s.getFn(ctx, id)
}
func (s *stubHealthAuthorityUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error) {
	return s.deactivateFn(ctx, id)
}
func (s *stubHealthAuthorityUsecase) UpdateSettings(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error) {
	return s.updateSettingsFn(ctx, id, req)
}

func muxRequest(t *testing.T, method, path string, vars map[string]string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	return mux.SetURLVars(req, vars)
}

func TestCreateHealthAuthoritiesBatch(t *testing.T) {
	var got *dto.CreateHealthAuthoritiesRequest
	stub := &stubHealthAuthorityUsecase{
		createFn: func(ctx context.Context, req *dto.CreateHealthAuthoritiesRequest) ([]dto.HealthAuthorityResponse, error) {
			got = req
			return []dto.HealthAuthorityResponse{{Name: "DHA"}, {Name: "DOH"}}, nil
		},
	}
	h := NewHealthAuthorityHandler(stub, validator.NewValidator())

	payload := map[string]interface{}{
		"health_authorities": []map[string]interface{}{
			{"name": "DHA", "status": "active"},
			{"name": "DOH"},
		},
	}
	rec := postJSON(t, h.CreateHealthAuthorities, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(got.HealthAuthorities) != 2 {
		t.Fatalf("got %d entries, want 2", len(got.HealthAuthorities))
	}
}

func TestCreateHealthAuthoritiesEmptyBatch(t *testing.T) {
	h := NewHealthAuthorityHandler(&stubHealthAuthorityUsecase{}, validator.NewValidator())

	rec := postJSON(t, h.CreateHealthAuthorities, map[string]interface{}{
		"health_authorities": []map[string]interface{}{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeactivateHealthAuthorityNotFound(t *testing.T) {
	stub := &stubHealthAuthorityUsecase{
		deactivateFn: func(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error) {
			return nil, usecase.ErrHealthAuthorityNotFound
		},
	}
	h := NewHealthAuthorityHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPut, "/api/health-authorities/"+id+"/deactivate", map[string]string{"id": id}, nil)
	rec := httptest.NewRecorder()
	h.DeactivateHealthAuthority(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateSettingsCategoryError(t *testing.T) {
	stub := &stubHealthAuthorityUsecase{
		updateSettingsFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error) {
			return nil, usecase.ErrDrugListUnavailable
		},
	}
	h := NewHealthAuthorityHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPut, "/api/health-authorities/"+id+"/settings", map[string]string{"id": id}, map[string]interface{}{
		"drug_list_id": uuid.New().String(),
	})
	rec := httptest.NewRecorder()
	h.UpdateSettings(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Drug List is not available" {
		t.Errorf("message = %q, want category error", resp.Message)
	}
}

func TestUpdateSettingsRejectsMalformedID(t *testing.T) {
	h := NewHealthAuthorityHandler(&stubHealthAuthorityUsecase{}, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPut, "/api/health-authorities/"+id+"/settings", map[string]string{"id": id}, map[string]interface{}{
		"diagnosis_list_id": "not-a-uuid",
	})
	rec := httptest.NewRecorder()
	h.UpdateSettings(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateSettingsClearAll(t *testing.T) {
	var got *dto.UpdateSettingsRequest
	stub := &stubHealthAuthorityUsecase{
		updateSettingsFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error) {
			got = req
			return &dto.HealthAuthorityResponse{ID: id}, nil
		},
	}
	h := NewHealthAuthorityHandler(stub, validator.NewValidator())

	id := uuid.New().String()
	req := muxRequest(t, http.MethodPut, "/api/health-authorities/"+id+"/settings", map[string]string{"id": id}, map[string]interface{}{})
	rec := httptest.NewRecorder()
	h.UpdateSettings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got.DiagnosisListID != "" || got.DrugListID != "" || got.ClinicianListID != "" {
		t.Error("empty payload should clear all bindings")
	}
}
