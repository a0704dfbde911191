package handler

import (
	"encoding/json"
	"net/http"

	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/usecase"
	"health-admin-backoffice/pkg/response"
	"health-admin-backoffice/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReferenceListHandler struct {
	listUsecase usecase.ReferenceListUsecase
	validator   *validator.CustomValidator
}

func NewReferenceListHandler(listUsecase usecase.ReferenceListUsecase, validator *validator.CustomValidator) *ReferenceListHandler {
	return &ReferenceListHandler{
		listUsecase: listUsecase,
		validator:   validator,
	}
}

// Diagnosis lists

func (h *ReferenceListHandler) CreateDiagnosisLists(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiagnosisListsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lists, err := h.listUsecase.CreateDiagnosisLists(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create diagnosis lists")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis lists created successfully", lists)
}

func (h *ReferenceListHandler) GetDiagnosisLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listUsecase.GetDiagnosisLists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnosis lists")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis lists retrieved successfully", lists)
}

func (h *ReferenceListHandler) GetDiagnosisList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	list, err := h.listUsecase.GetDiagnosisList(r.Context(), listID)
	if err != nil {
		if err == usecase.ErrDiagnosisListNotFound {
			response.NotFound(w, "Diagnosis list not found")
			return
		}
		response.InternalServerError(w, "Failed to get diagnosis list")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis list retrieved successfully", list)
}

func (h *ReferenceListHandler) UpdateDiagnosisList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	var req dto.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.listUsecase.UpdateDiagnosisList(r.Context(), listID, &req)
	if err != nil {
		if err == usecase.ErrDiagnosisListNotFound {
			response.NotFound(w, "Diagnosis list not found")
			return
		}
		response.InternalServerError(w, "Failed to update diagnosis list")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis list updated successfully", list)
}

func (h *ReferenceListHandler) DeleteDiagnosisList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	if err := h.listUsecase.DeleteDiagnosisList(r.Context(), listID); err != nil {
		if err == usecase.ErrDiagnosisListNotFound {
			response.NotFound(w, "Diagnosis list not found")
			return
		}
		response.InternalServerError(w, "Failed to delete diagnosis list")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis list deleted successfully", nil)
}

// Drug lists

func (h *ReferenceListHandler) CreateDrugLists(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDrugListsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lists, err := h.listUsecase.CreateDrugLists(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create drug lists")
		return
	}

	response.Success(w, http.StatusCreated, "Drug lists created successfully", lists)
}

func (h *ReferenceListHandler) GetDrugLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listUsecase.GetDrugLists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get drug lists")
		return
	}

	response.Success(w, http.StatusOK, "Drug lists retrieved successfully", lists)
}

func (h *ReferenceListHandler) GetDrugList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	list, err := h.listUsecase.GetDrugList(r.Context(), listID)
	if err != nil {
		if err == usecase.ErrDrugListNotFound {
			response.NotFound(w, "Drug list not found")
			return
		}
		response.InternalServerError(w, "Failed to get drug list")
		return
	}

	response.Success(w, http.StatusOK, "Drug list retrieved successfully", list)
}

func (h *ReferenceListHandler) UpdateDrugList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	var req dto.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.listUsecase.UpdateDrugList(r.Context(), listID, &req)
	if err != nil {
		if err == usecase.ErrDrugListNotFound {
			response.NotFound(w, "Drug list not found")
			return
		}
		response.InternalServerError(w, "Failed to update drug list")
		return
	}

	response.Success(w, http.StatusOK, "Drug list updated successfully", list)
}

func (h *ReferenceListHandler) DeleteDrugList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	if err := h.listUsecase.DeleteDrugList(r.Context(), listID); err != nil {
		if err == usecase.ErrDrugListNotFound {
			response.NotFound(w, "Drug list not found")
			return
		}
		response.InternalServerError(w, "Failed to delete drug list")
		return
	}

	response.Success(w, http.StatusOK, "Drug list deleted successfully", nil)
}

// Clinician lists

func (h *ReferenceListHandler) CreateClinicianLists(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicianListsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lists, err := h.listUsecase.CreateClinicianLists(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create clinician lists")
		return
	}

	response.Success(w, http.StatusCreated, "Clinician lists created successfully", lists)
}

func (h *ReferenceListHandler) GetClinicianLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listUsecase.GetClinicianLists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clinician lists")
		return
	}

	response.Success(w, http.StatusOK, "Clinician lists retrieved successfully", lists)
}

func (h *ReferenceListHandler) GetClinicianList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	list, err := h.listUsecase.GetClinicianList(r.Context(), listID)
	if err != nil {
		if err == usecase.ErrClinicianListNotFound {
			response.NotFound(w, "Clinician list not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinician list")
		return
	}

	response.Success(w, http.StatusOK, "Clinician list retrieved successfully", list)
}

func (h *ReferenceListHandler) UpdateClinicianList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	var req dto.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.listUsecase.UpdateClinicianList(r.Context(), listID, &req)
	if err != nil {
		if err == usecase.ErrClinicianListNotFound {
			response.NotFound(w, "Clinician list not found")
			return
		}
		response.InternalServerError(w, "Failed to update clinician list")
		return
	}

	response.Success(w, http.StatusOK, "Clinician list updated successfully", list)
}

func (h *ReferenceListHandler) DeleteClinicianList(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid list ID", nil)
		return
	}

	if err := h.listUsecase.DeleteClinicianList(r.Context(), listID); err != nil {
		if err == usecase.ErrClinicianListNotFound {
			response.NotFound(w, "Clinician list not found")
			return
		}
		response.InternalServerError(w, "Failed to delete clinician list")
		return
	}

	response.Success(w, http.StatusOK, "Clinician list deleted successfully", nil)
}
