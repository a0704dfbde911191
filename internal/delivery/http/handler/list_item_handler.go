package handler

import (
	_ "embed"
	"encoding/json"
	"io"
	"net/http"

	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/service"
	"health-admin-backoffice/internal/usecase"
	"health-admin-backoffice/pkg/response"
	"health-admin-backoffice/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxImportFileSize caps the clinician import upload at 10 MiB.
const maxImportFileSize = 10 << 20

//go:embed templates/clinician_import_template.csv
var clinicianImportTemplate []byte

type ListItemHandler struct {
	itemUsecase usecase.ListItemUsecase
	validator   *validator.CustomValidator
}

func NewListItemHandler(itemUsecase usecase.ListItemUsecase, validator *validator.CustomValidator) *ListItemHandler {
	return &ListItemHandler{
		itemUsecase: itemUsecase,
		validator:   validator,
	}
}

// Diagnoses

func (h *ListItemHandler) AddDiagnosis(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.itemUsecase.AddDiagnosis(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrDiagnosisListNotFound {
			response.Error(w, http.StatusBadRequest, "Diagnosis list not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to add diagnosis")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis added successfully", diagnosis)
}

func (h *ListItemHandler) GetDiagnoses(w http.ResponseWriter, r *http.Request) {
	var listID *uuid.UUID
	if raw := r.URL.Query().Get("diagnosis_list_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid diagnosis_list_id", nil)
			return
		}
		listID = &parsed
	}

	diagnoses, err := h.itemUsecase.GetDiagnoses(r.Context(), listID)
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

func (h *ListItemHandler) DeleteDiagnosis(w http.ResponseWriter, r *http.Request) {
	diagnosisID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	if err := h.itemUsecase.DeleteDiagnosis(r.Context(), diagnosisID); err != nil {
		if err == usecase.ErrDiagnosisNotFound {
			response.NotFound(w, "Diagnosis not found")
			return
		}
		response.InternalServerError(w, "Failed to delete diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis deleted successfully", nil)
}

// Drugs

func (h *ListItemHandler) AddDrug(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	drug, err := h.itemUsecase.AddDrug(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrDrugListNotFound {
			response.Error(w, http.StatusBadRequest, "Drug list not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to add drug")
		return
	}

	response.Success(w, http.StatusCreated, "Drug added successfully", drug)
}

func (h *ListItemHandler) GetDrugs(w http.ResponseWriter, r *http.Request) {
	var listID *uuid.UUID
	if raw := r.URL.Query().Get("drug_list_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid drug_list_id", nil)
			return
		}
		listID = &parsed
	}

	drugs, err := h.itemUsecase.GetDrugs(r.Context(), listID)
	if err != nil {
		response.InternalServerError(w, "Failed to get drugs")
		return
	}

	response.Success(w, http.StatusOK, "Drugs retrieved successfully", drugs)
}

func (h *ListItemHandler) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	drugID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	if err := h.itemUsecase.DeleteDrug(r.Context(), drugID); err != nil {
		if err == usecase.ErrDrugNotFound {
			response.NotFound(w, "Drug not found")
			return
		}
		response.InternalServerError(w, "Failed to delete drug")
		return
	}

	response.Success(w, http.StatusOK, "Drug deleted successfully", nil)
}

// Clinicians

func (h *ListItemHandler) AddClinician(w http.ResponseWriter, r *http.Request) {
	var req dto.AddClinicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinician, err := h.itemUsecase.AddClinician(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrClinicianListNotFound {
			response.Error(w, http.StatusBadRequest, "Clinician list not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to add clinician")
		return
	}

	response.Success(w, http.StatusCreated, "Clinician added successfully", clinician)
}

func (h *ListItemHandler) GetClinicians(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("clinician_list_id")
	if raw == "" {
		response.Error(w, http.StatusBadRequest, "clinician_list_id is required", nil)
		return
	}
	listID, err := uuid.Parse(raw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician_list_id", nil)
		return
	}

	clinicians, err := h.itemUsecase.GetClinicians(r.Context(), listID)
	if err != nil {
		response.InternalServerError(w, "Failed to get clinicians")
		return
	}

	response.Success(w, http.StatusOK, "Clinicians retrieved successfully", clinicians)
}

func (h *ListItemHandler) DeleteClinician(w http.ResponseWriter, r *http.Request) {
	clinicianID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	if err := h.itemUsecase.DeleteClinician(r.Context(), clinicianID); err != nil {
		if err == usecase.ErrClinicianNotFound {
			response.NotFound(w, "Clinician not found")
			return
		}
		response.InternalServerError(w, "Failed to delete clinician")
		return
	}

	response.Success(w, http.StatusOK, "Clinician deleted successfully", nil)
}

// ImportClinicians accepts a multipart form with a "file" part, the owning
// "clinician_list_id" field and an optional "password" for encrypted files.
func (h *ListItemHandler) ImportClinicians(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	listID, err := uuid.Parse(r.FormValue("clinician_list_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician_list_id", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Import file is required", nil)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(file, maxImportFileSize))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read import file", nil)
		return
	}

	result, err := h.itemUsecase.ImportClinicians(r.Context(), listID, fileBytes, r.FormValue("password"))
	if err != nil {
		switch err {
		case usecase.ErrClinicianListNotFound:
			response.Error(w, http.StatusBadRequest, "Clinician list not found", nil)
		case service.ErrImportFileEmpty, service.ErrImportMissingHeader, service.ErrImportMissingName, service.ErrImportTooManyRows:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case service.ErrImportBadPassword:
			response.Error(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to import clinicians")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinicians imported successfully", result)
}

// ImportTemplate serves the CSV template the import endpoint expects.
func (h *ListItemHandler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="clinician_import_template.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(clinicianImportTemplate)
}
