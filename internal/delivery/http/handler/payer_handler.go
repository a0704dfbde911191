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

type PayerHandler struct {
	payerUsecase usecase.PayerUsecase
	validator    *validator.CustomValidator
}

func NewPayerHandler(payerUsecase usecase.PayerUsecase, validator *validator.CustomValidator) *PayerHandler {
	return &PayerHandler{
		payerUsecase: payerUsecase,
		validator:    validator,
	}
}

func (h *PayerHandler) RegisterPayer(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payer, err := h.payerUsecase.Register(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to register payer")
		return
	}

	response.Success(w, http.StatusCreated, "Payer registered successfully", payer)
}

func (h *PayerHandler) GetPayers(w http.ResponseWriter, r *http.Request) {
	payers, err := h.payerUsecase.GetPayers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get payers")
		return
	}

	response.Success(w, http.StatusOK, "Payers retrieved successfully", payers)
}

func (h *PayerHandler) GetPayer(w http.ResponseWriter, r *http.Request) {
	payerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payer ID", nil)
		return
	}

	payer, err := h.payerUsecase.GetPayer(r.Context(), payerID)
	if err != nil {
		if err == usecase.ErrPayerNotFound {
			response.NotFound(w, "Payer not found")
			return
		}
		response.InternalServerError(w, "Failed to get payer")
		return
	}

	response.Success(w, http.StatusOK, "Payer retrieved successfully", payer)
}

func (h *PayerHandler) UpdatePayer(w http.ResponseWriter, r *http.Request) {
	payerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payer ID", nil)
		return
	}

	var req dto.UpdatePayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payer, err := h.payerUsecase.UpdatePayer(r.Context(), payerID, &req)
	if err != nil {
		if err == usecase.ErrPayerNotFound {
			response.NotFound(w, "Payer not found")
			return
		}
		response.InternalServerError(w, "Failed to update payer")
		return
	}

	response.Success(w, http.StatusOK, "Payer updated successfully", payer)
}

func (h *PayerHandler) GetCredential(w http.ResponseWriter, r *http.Request) {
	payerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payer ID", nil)
		return
	}

	credential, err := h.payerUsecase.GetCredential(r.Context(), payerID)
	if err != nil {
		switch err {
		case usecase.ErrPayerNotFound:
			response.NotFound(w, "Payer not found")
		case usecase.ErrCredentialNotRegistered:
			response.NotFound(w, "Payer has no registered credential")
		default:
			response.InternalServerError(w, "Failed to get payer credential")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payer credential retrieved successfully", credential)
}

func (h *PayerHandler) RegisterCredential(w http.ResponseWriter, r *http.Request) {
	payerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payer ID", nil)
		return
	}

	var req dto.RegisterCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	credential, err := h.payerUsecase.RegisterCredential(r.Context(), payerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPayerNotFound:
			response.NotFound(w, "Payer not found")
		case usecase.ErrCredentialAuthorityUnset:
			response.Error(w, http.StatusBadRequest, "Health authority not found", nil)
		case usecase.ErrReservedCredentialUser:
			response.Error(w, http.StatusBadRequest, "User name is reserved", nil)
		case usecase.ErrCredentialExists:
			response.Conflict(w, "Credential already registered for this health authority")
		default:
			response.InternalServerError(w, "Failed to register payer credential")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payer credential registered successfully", credential)
}
