package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPayerRequest struct {
	PayerName   string `json:"payer_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"omitempty"`
	ContactInfo string `json:"contact_info" validate:"omitempty"`
	Status      string `json:"status" validate:"required"`
}

type UpdatePayerRequest struct {
	PayerName   string `json:"payer_name" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"omitempty"`
	ContactInfo string `json:"contact_info" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty"`
}

type RegisterCredentialRequest struct {
	HealthAuthorityID uuid.UUID `json:"health_authority_id" validate:"required"`
	UserName          string    `json:"user_name" validate:"required"`
	Code              string    `json:"code" validate:"omitempty"`
	Password          string    `json:"password" validate:"omitempty"`
	Status            string    `json:"status" validate:"omitempty"`
}

// Response DTOs

type PayerResponse struct {
	ID          uuid.UUID `json:"id"`
	PayerName   string    `json:"payer_name"`
	Email       string    `json:"email"`
	Address     string    `json:"address,omitempty"`
	ContactInfo string    `json:"contact_info,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PayerListResponse struct {
	Payers []PayerResponse `json:"payers"`
	Total  int             `json:"total"`
}

type CredentialResponse struct {
	HealthAuthorityID uuid.UUID `json:"health_authority_id"`
	UserName          string    `json:"user_name"`
	Code              string    `json:"code,omitempty"`
	Password          string    `json:"password,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}
