package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/service"
	"health-admin-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type stubListItemUsecase struct {
	addDiagnosisFn     func(ctx context.Context, req *dto.AddDiagnosisRequest) (*dto.DiagnosisResponse, error)
	getDiagnosesFn     func(ctx context.Context, listID *uuid.UUID) (*dto.DiagnosisItemListResponse, error)
	deleteDiagnosisFn  func(ctx context.Context, id uuid.UUID) error
	addDrugFn          func(ctx context.Context, req *dto.AddDrugRequest) (*dto.DrugResponse, error)
	getDrugsFn         func(ctx context.Context, listID *uuid.UUID) (*dto.DrugItemListResponse, error)
	deleteDrugFn       func(ctx context.Context, id uuid.UUID) error
	addClinicianFn     func(ctx context.Context, req *dto.AddClinicianRequest) (*dto.ClinicianResponse, error)
	getCliniciansFn    func(ctx context.Context, listID uuid.UUID) (*dto.ClinicianItemListResponse, error)
	deleteClinicianFn  func(ctx context.Context, id uuid.UUID) error
	importCliniciansFn func(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error)
}

func (s *stubListItemUsecase) AddDiagnosis(ctx context.Context, req *dto.AddDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	return s.addDiagnosisFn(ctx, req)
}
func (s *stubListItemUsecase) GetDiagnoses(ctx context.Context, listID *uuid.UUID) (*dto.DiagnosisItemListResponse, error) {
	return s.getDiagnosesFn(ctx, listID)
}
func (s *stubListItemUsecase) DeleteDiagnosis(ctx context.Context, id uuid.UUID) error {
	return s.deleteDiagnosisFn(ctx, id)
}
func (s *stubListItemUsecase) AddDrug(ctx context.Context, req *dto.AddDrugRequest) (*dto.DrugResponse, error) {
	return s.addDrugFn(ctx, req)
}
func (s *stubListItemUsecase) GetDrugs(ctx context.Context, listID *uuid.UUID) (*dto.DrugItemListResponse, error) {
	return s.getDrugsFn(ctx, listID)
}
func (s *stubListItemUsecase) DeleteDrug(ctx context.Context, id uuid.UUID) error {
	return s.deleteDrugFn(ctx, id)
}
func (s *stubListItemUsecase) AddClinician(ctx context.Context, req *dto.AddClinicianRequest) (*dto.ClinicianResponse, error) {
	return s.addClinicianFn(ctx, req)
}
func (s *stubListItemUsecase) GetClinicians(ctx context.Context, listID uuid.UUID) (*dto.ClinicianItemListResponse, error) {
	return s.getCliniciansFn(ctx, listID)
}
func (s *stubListItemUsecase) DeleteClinician(ctx context.Context, id uuid.UUID) error {
	return s.deleteClinicianFn(ctx, id)
}
func (s *stubListItemUsecase) ImportClinicians(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error) {
	return s.importCliniciansFn(ctx, listID, fileBytes, password)
}

func importRequest(t *testing.T, listID, password string, fileContent []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if listID != "" {
		if err := writer.WriteField("clinician_list_id", listID); err != nil {
			t.Fatalf("write list id field: %v", err)
		}
	}
	if password != "" {
		if err := writer.WriteField("password", password); err != nil {
			t.Fatalf("write password field: %v", err)
		}
	}
	if fileContent != nil {
		part, err := writer.CreateFormFile("file", "clinicians.csv")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/clinicians/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportClinicians(t *testing.T) {
	wantList := uuid.New()
	csv := []byte("name,clinician_code\nDr. Rana,C-100\n")

	stub := &stubListItemUsecase{
		importCliniciansFn: func(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error) {
			if listID != wantList {
				t.Errorf("listID = %s, want %s", listID, wantList)
			}
			if !bytes.Equal(fileBytes, csv) {
				t.Error("file bytes did not survive the multipart round trip")
			}
			if password != "s3cret" {
				t.Errorf("password = %q", password)
			}
			return &dto.ImportResultResponse{InsertedCount: 1}, nil
		},
	}
	h := NewListItemHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ImportClinicians(rec, importRequest(t, wantList.String(), "s3cret", csv))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestImportCliniciansBadPassword(t *testing.T) {
	stub := &stubListItemUsecase{
		importCliniciansFn: func(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error) {
			return nil, service.ErrImportBadPassword
		},
	}
	h := NewListItemHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ImportClinicians(rec, importRequest(t, uuid.New().String(), "wrong", []byte("garbage")))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestImportCliniciansMissingFile(t *testing.T) {
	h := NewListItemHandler(&stubListItemUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ImportClinicians(rec, importRequest(t, uuid.New().String(), "", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestImportCliniciansInvalidListID(t *testing.T) {
	h := NewListItemHandler(&stubListItemUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ImportClinicians(rec, importRequest(t, "not-a-uuid", "", []byte("name\nDr. Rana\n")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestImportTemplate(t *testing.T) {
	h := NewListItemHandler(&stubListItemUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/clinicians/import/template", nil)
	rec := httptest.NewRecorder()
	h.ImportTemplate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("name,")) {
		t.Error("template should start with the header row")
	}
}

func TestGetCliniciansRequiresListID(t *testing.T) {
	h := NewListItemHandler(&stubListItemUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/clinicians", nil)
	rec := httptest.NewRecorder()
	h.GetClinicians(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetDiagnosesOptionalListFilter(t *testing.T) {
	var got *uuid.UUID
	stub := &stubListItemUsecase{
		getDiagnosesFn: func(ctx context.Context, listID *uuid.UUID) (*dto.DiagnosisItemListResponse, error) {
			got = listID
			return &dto.DiagnosisItemListResponse{}, nil
		},
	}
	h := NewListItemHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/diagnoses", nil)
	rec := httptest.NewRecorder()
	h.GetDiagnoses(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != nil {
		t.Error("listID should be nil when the query param is omitted")
	}

	listID := uuid.New()
	req = httptest.NewRequest(http.MethodGet, "/diagnoses?diagnosis_list_id="+listID.String(), nil)
	rec = httptest.NewRecorder()
	h.GetDiagnoses(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || *got != listID {
		t.Errorf("listID = %v, want %s", got, listID)
	}
}
