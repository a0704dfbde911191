package handler

import (
	"encoding/json"
	"net/http"

	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/usecase"
	"health-admin-backoffice/pkg/response"
	"health-admin-backoffice/pkg/validator"
)

// PrescriptionHandler exposes the POST-style prescription endpoints the
// dashboard uses; record ids travel in the body rather than the path.
type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) AddPrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMemberIDExists:
			response.Conflict(w, "Member ID already exists")
		case usecase.ErrEmiratesIDExists:
			response.Conflict(w, "Emirates ID already exists")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) FetchPrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.FetchPrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Fetch(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrMemberIDExists:
			response.Conflict(w, "Member ID already exists")
		case usecase.ErrEmiratesIDExists:
			response.Conflict(w, "Emirates ID already exists")
		default:
			response.InternalServerError(w, "Failed to update prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.PrescriptionIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), req.ID); err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to delete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

func (h *PrescriptionHandler) AddDrugLine(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPrescriptionDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	line, err := h.prescriptionUsecase.AddDrugLine(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.Error(w, http.StatusBadRequest, "Prescription not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to add prescription drug")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription drug added successfully", line)
}

func (h *PrescriptionHandler) DeleteDrugLine(w http.ResponseWriter, r *http.Request) {
	var req dto.LineIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.prescriptionUsecase.DeleteDrugLine(r.Context(), req.ID); err != nil {
		if err == usecase.ErrDrugLineNotFound {
			response.NotFound(w, "Prescription drug not found")
			return
		}
		response.InternalServerError(w, "Failed to delete prescription drug")
		return
	}

	response.Success(w, http.StatusOK, "Prescription drug deleted successfully", nil)
}

func (h *PrescriptionHandler) AddDiagnosisLine(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPrescriptionDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	line, err := h.prescriptionUsecase.AddDiagnosisLine(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.Error(w, http.StatusBadRequest, "Prescription not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to add prescription diagnosis")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription diagnosis added successfully", line)
}

func (h *PrescriptionHandler) DeleteDiagnosisLine(w http.ResponseWriter, r *http.Request) {
	var req dto.LineIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.prescriptionUsecase.DeleteDiagnosisLine(r.Context(), req.ID); err != nil {
		if err == usecase.ErrDiagnosisLineNotFound {
			response.NotFound(w, "Prescription diagnosis not found")
			return
		}
		response.InternalServerError(w, "Failed to delete prescription diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Prescription diagnosis deleted successfully", nil)
}
