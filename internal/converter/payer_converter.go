package converter

import (
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
)

func PayerToResponse(payer *entity.Payer) *dto.PayerResponse {
	if payer == nil {
		return nil
	}
	return &dto.PayerResponse{
		ID:          payer.ID,
		PayerName:   payer.PayerName,
		Email:       payer.Email,
		Address:     payer.Address,
		ContactInfo: payer.ContactInfo,
		Status:      string(payer.Status),
		CreatedAt:   payer.CreatedAt,
	}
}

func PayersToResponses(payers []entity.Payer) []dto.PayerResponse {
	responses := make([]dto.PayerResponse, len(payers))
	for i := range payers {
		responses[i] = *PayerToResponse(&payers[i])
	}
	return responses
}

// CredentialToResponse converts a credential row. Sentinel rows are never
// converted; callers translate them into an absent result first.
func CredentialToResponse(credential *entity.PayerHACredential) *dto.CredentialResponse {
	if credential == nil {
		return nil
	}
	return &dto.CredentialResponse{
		HealthAuthorityID: credential.HealthAuthorityID,
		UserName:          credential.UserName,
		Code:              credential.Code,
		Password:          credential.Password,
		Status:            string(credential.Status),
		CreatedAt:         credential.CreatedAt,
	}
}
