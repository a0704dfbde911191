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

type HealthAuthorityHandler struct {
	authorityUsecase usecase.HealthAuthorityUsecase
	validator        *validator.CustomValidator
}

func NewHealthAuthorityHandler(authorityUsecase usecase.HealthAuthorityUsecase, validator *validator.CustomValidator) *HealthAuthorityHandler {
	return &HealthAuthorityHandler{
		authorityUsecase: authorityUsecase,
		validator:        validator,
	}
}

func (h *HealthAuthorityHandler) CreateHealthAuthorities(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthAuthoritiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	authorities, err := h.authorityUsecase.CreateAuthorities(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create health authorities")
		return
	}

	response.Success(w, http.StatusCreated, "Health authorities created successfully", authorities)
}

func (h *HealthAuthorityHandler) GetHealthAuthorities(w http.ResponseWriter, r *http.Request) {
	authorities, err := h.authorityUsecase.GetAuthorities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health authorities")
		return
	}

	response.Success(w, http.StatusOK, "Health authorities retrieved successfully", authorities)
}

func (h *HealthAuthorityHandler) GetHealthAuthority(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	authorityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health authority ID", nil)
		return
	}

	authority, err := h.authorityUsecase.GetAuthority(r.Context(), authorityID)
	if err != nil {
		if err == usecase.ErrHealthAuthorityNotFound {
			response.NotFound(w, "Health authority not found")
			return
		}
		response.InternalServerError(w, "Failed to get health authority")
		return
	}

	response.Success(w, http.StatusOK, "Health authority retrieved successfully", authority)
}

func (h *HealthAuthorityHandler) DeactivateHealthAuthority(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	authorityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health authority ID", nil)
		return
	}

	authority, err := h.authorityUsecase.Deactivate(r.Context(), authorityID)
	if err != nil {
		if err == usecase.ErrHealthAuthorityNotFound {
			response.NotFound(w, "Health authority not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate health authority")
		return
	}

	response.Success(w, http.StatusOK, "Health authority deactivated successfully", authority)
}

func (h *HealthAuthorityHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	authorityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health authority ID", nil)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	authority, err := h.authorityUsecase.UpdateSettings(r.Context(), authorityID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthAuthorityNotFound:
			response.NotFound(w, "Health authority not found")
		case usecase.ErrDiagnosisListUnavailable:
			response.Error(w, http.StatusBadRequest, "Diagnosis List is not available", nil)
		case usecase.ErrDrugListUnavailable:
			response.Error(w, http.StatusBadRequest, "Drug List is not available", nil)
		case usecase.ErrClinicianListUnavailable:
			response.Error(w, http.StatusBadRequest, "Clinician List is not available", nil)
		default:
			response.InternalServerError(w, "Failed to update health authority settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health authority settings updated successfully", authority)
}
