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
	"health-admin-backoffice/pkg/validator"
)

type stubPrescriptionUsecase struct {
	createFn           func(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	fetchFn            func(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error)
	updateFn           func(ctx context.Context, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	deleteFn           func(ctx context.Context, id uint) error
	addDrugFn          func(ctx context.Context, req *dto.AddPrescriptionDrugRequest) (*dto.PrescriptionDrugResponse, error)
	deleteDrugFn       func(ctx context.Context, id uint) error
	addDiagnosisFn     func(ctx context.Context, req *dto.AddPrescriptionDiagnosisRequest) (*dto.PrescriptionDiagnosisResponse, error)
	deleteDiagnosisFn  func(ctx context.Context, id uint) error
}

func (s *stubPrescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return s.createFn(ctx, req)
}
func (s *stubPrescriptionUsecase) Fetch(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return s.fetchFn(ctx, req)
}
func (s *stubPrescriptionUsecase) Update(ctx context.Context, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return s.updateFn(ctx, req)
}
func (s *stubPrescriptionUsecase) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *stubPrescriptionUsecase) AddDrugLine(ctx context.Context, req *dto.AddPrescriptionDrugRequest) (*dto.PrescriptionDrugResponse, error) {
	return s.addDrugFn(ctx, req)
}
func (s *stubPrescriptionUsecase) DeleteDrugLine(ctx context.Context, id uint) error {
	return s.deleteDrugFn(ctx, id)
}
func (s *stubPrescriptionUsecase) AddDiagnosisLine(ctx context.Context, req *dto.AddPrescriptionDiagnosisRequest) (*dto.PrescriptionDiagnosisResponse, error) {
	return s.addDiagnosisFn(ctx, req)
}
func (s *stubPrescriptionUsecase) DeleteDiagnosisLine(ctx context.Context, id uint) error {
	return s.deleteDiagnosisFn(ctx, id)
}

func validPrescriptionBody() map[string]interface{} {
	return map[string]interface{}{
		"memberId":    "MBR-1",
		"payerTpa":    "Daman",
		"emiratesId":  "784-1990-1234567-1",
		"name":        "Sara Ali",
		"gender":      "Female",
		"dateOfBirth": "1990-06-15",
		"physician":   "Dr. Farid",
		"mobile":      "0501234567",
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAddPrescriptionSuccess(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		createFn: func(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
			return &dto.PrescriptionResponse{ID: 1, MemberID: req.MemberID}, nil
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.AddPrescription, validPrescriptionBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestAddPrescriptionDuplicateMemberID(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		createFn: func(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
			return nil, usecase.ErrMemberIDExists
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.AddPrescription, validPrescriptionBody())
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestAddPrescriptionInvalidMobile(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, validator.NewValidator())

	body := validPrescriptionBody()
	body["mobile"] = "12345"

	rec := postJSON(t, h.AddPrescription, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAddPrescriptionInvalidGender(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, validator.NewValidator())

	body := validPrescriptionBody()
	body["gender"] = "unknown"

	rec := postJSON(t, h.AddPrescription, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestFetchPrescriptionNotFound(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		fetchFn: func(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error) {
			return nil, usecase.ErrPrescriptionNotFound
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.FetchPrescription, map[string]interface{}{"id": 99})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestFetchPrescriptionPassesIncludeFlags(t *testing.T) {
	var got *dto.FetchPrescriptionRequest
	stub := &stubPrescriptionUsecase{
		fetchFn: func(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error) {
			got = req
			return &dto.PrescriptionResponse{ID: req.ID}, nil
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.FetchPrescription, map[string]interface{}{"id": 5, "includeDrugs": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.IncludeDrugs == nil || *got.IncludeDrugs {
		t.Error("includeDrugs=false not passed through")
	}
	if got.IncludeDiagnoses != nil {
		t.Error("omitted includeDiagnoses should stay nil")
	}
}

func TestDeletePrescriptionNotFound(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		deleteFn: func(ctx context.Context, id uint) error {
			return usecase.ErrPrescriptionNotFound
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.DeletePrescription, map[string]interface{}{"id": 42})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAddDrugLineRejectsMissingQuantity(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, validator.NewValidator())

	rec := postJSON(t, h.AddDrugLine, map[string]interface{}{
		"prescription_id": 1,
		"ndc_drug_code":   "0002-1433-80",
		"days_of_supply":  30,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAddDrugLineAcceptsZeroQuantity(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		addDrugFn: func(ctx context.Context, req *dto.AddPrescriptionDrugRequest) (*dto.PrescriptionDrugResponse, error) {
			return &dto.PrescriptionDrugResponse{ID: 1, PrescriptionID: req.PrescriptionID}, nil
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.AddDrugLine, map[string]interface{}{
		"prescription_id":    1,
		"ndc_drug_code":      "0002-1433-80",
		"dispensed_quantity": 0,
		"days_of_supply":     0,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}
