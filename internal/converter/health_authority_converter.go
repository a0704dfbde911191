package converter

import (
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
)

// HealthAuthorityToResponse converts a HealthAuthority entity to its DTO,
// resolving bound list names when the associations are loaded.
func HealthAuthorityToResponse(authority *entity.HealthAuthority) *dto.HealthAuthorityResponse {
	if authority == nil {
		return nil
	}

	resp := &dto.HealthAuthorityResponse{
		ID:              authority.ID,
		Name:            authority.Name,
		ShortName:       authority.ShortName,
		ContactEmail:    authority.ContactEmail,
		Status:          string(authority.Status),
		Country:         authority.Country,
		State:           authority.State,
		City:            authority.City,
		DiagnosisListID: authority.DiagnosisListID,
		DrugListID:      authority.DrugListID,
		ClinicianListID: authority.ClinicianListID,
		CreatedAt:       authority.CreatedAt,
	}

	if authority.DiagnosisList != nil {
		resp.DiagnosisList = authority.DiagnosisList.Name
	}
	if authority.DrugList != nil {
		resp.DrugList = authority.DrugList.Name
	}
	if authority.ClinicianList != nil {
		resp.ClinicianList = authority.ClinicianList.Name
	}

	return resp
}

// HealthAuthoritiesToResponses converts a slice of authorities.
func HealthAuthoritiesToResponses(authorities []entity.HealthAuthority) []dto.HealthAuthorityResponse {
	responses := make([]dto.HealthAuthorityResponse, len(authorities))
	for i := range authorities {
		responses[i] = *HealthAuthorityToResponse(&authorities[i])
	}
	return responses
}
