package usecase

import (
	"context"
	"errors"

	"health-admin-backoffice/internal/converter"
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
	"health-admin-backoffice/internal/domain/repository"
	"health-admin-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthAuthorityNotFound = errors.New("health authority not found")

	// Settings updates name which category failed so the dashboard can point
	// at the offending field.
	ErrDiagnosisListUnavailable = errors.New("Diagnosis List is not available")
	ErrDrugListUnavailable      = errors.New("Drug List is not available")
	ErrClinicianListUnavailable = errors.New("Clinician List is not available")
)

type HealthAuthorityUsecase interface {
	CreateAuthorities(ctx context.Context, req *dto.CreateHealthAuthoritiesRequest) ([]dto.HealthAuthorityResponse, error)
	GetAuthorities(ctx context.Context) (*dto.HealthAuthorityListResponse, error)
	GetAuthority(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error)
}

type healthAuthorityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	authorityRepo     repository.HealthAuthorityRepository
	diagnosisListRepo repository.DiagnosisListRepository
	drugListRepo      repository.DrugListRepository
	clinicianListRepo repository.ClinicianListRepository
	auditService      service.AuditService
}

func NewHealthAuthorityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	authorityRepo repository.HealthAuthorityRepository,
	diagnosisListRepo repository.DiagnosisListRepository,
	drugListRepo repository.DrugListRepository,
	clinicianListRepo repository.ClinicianListRepository,
	auditService service.AuditService,
) HealthAuthorityUsecase {
	return &healthAuthorityUsecase{
		db:                db,
		log:               log,
		authorityRepo:     authorityRepo,
		diagnosisListRepo: diagnosisListRepo,
		drugListRepo:      drugListRepo,
		clinicianListRepo: clinicianListRepo,
		auditService:      auditService,
	}
}

func (u *healthAuthorityUsecase) CreateAuthorities(ctx context.Context, req *dto.CreateHealthAuthoritiesRequest) ([]dto.HealthAuthorityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	authorities := make([]entity.HealthAuthority, len(req.HealthAuthorities))
	for i, entry := range req.HealthAuthorities {
		authorities[i] = entity.HealthAuthority{
			Name:         entry.Name,
			ShortName:    entry.ShortName,
			ContactEmail: entry.ContactEmail,
			Status:       entity.NormalizeStatus(entry.Status),
			Country:      entry.Country,
			State:        entry.State,
			City:         entry.City,
		}
	}

	if err := u.authorityRepo.CreateBatch(tx, authorities); err != nil {
		u.log.Warnf("Failed to create health authorities: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	for i := range authorities {
		if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionAuthorityCreate, "health_authority", authorities[i].ID.String(), converter.HealthAuthorityToResponse(&authorities[i])); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthAuthoritiesToResponses(authorities), nil
}

func (u *healthAuthorityUsecase) GetAuthorities(ctx context.Context) (*dto.HealthAuthorityListResponse, error) {
	authorities, err := u.authorityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find health authorities: %+v", err)
		return nil, err
	}

	responses := converter.HealthAuthoritiesToResponses(authorities)
	return &dto.HealthAuthorityListResponse{Authorities: responses, Total: len(responses)}, nil
}

func (u *healthAuthorityUsecase) GetAuthority(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error) {
	authority, err := u.authorityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health authority: %+v", err)
		return nil, err
	}
	if authority == nil {
		return nil, ErrHealthAuthorityNotFound
	}
	return converter.HealthAuthorityToResponse(authority), nil
}

// Deactivate flips the authority to INACTIVE. Deactivating an already
// inactive authority succeeds without touching the row.
func (u *healthAuthorityUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*dto.HealthAuthorityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	authority, err := u.authorityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health authority: %+v", err)
		return nil, err
	}
	if authority == nil {
		return nil, ErrHealthAuthorityNotFound
	}

	if authority.Status == entity.StatusInactive {
		return converter.HealthAuthorityToResponse(authority), nil
	}

	authority.Status = entity.StatusInactive
	if err := u.authorityRepo.Update(tx, authority); err != nil {
		u.log.Warnf("Failed to deactivate health authority: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionAuthorityDeactivate, "health_authority", id.String(), nil, map[string]interface{}{"status": entity.StatusInactive}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthAuthorityToResponse(authority), nil
}

// UpdateSettings replaces all three list bindings atomically. Every supplied
// id is verified against its category inside the same transaction, so a
// concurrent list delete cannot leave a dangling binding. Empty ids clear.
func (u *healthAuthorityUsecase) UpdateSettings(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.HealthAuthorityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	authority, err := u.authorityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health authority: %+v", err)
		return nil, err
	}
	if authority == nil {
		return nil, ErrHealthAuthorityNotFound
	}

	oldValue := converter.HealthAuthorityToResponse(authority)
	authority.ClearBindings()

	if req.DiagnosisListID != "" {
		listID, err := uuid.Parse(req.DiagnosisListID)
		if err != nil {
			return nil, ErrDiagnosisListUnavailable
		}
		list, err := u.diagnosisListRepo.FindByID(tx, listID)
		if err != nil {
			u.log.Warnf("Failed to find diagnosis list: %+v", err)
			return nil, err
		}
		if list == nil {
			return nil, ErrDiagnosisListUnavailable
		}
		authority.DiagnosisListID = &listID
	}

	if req.DrugListID != "" {
		listID, err := uuid.Parse(req.DrugListID)
		if err != nil {
			return nil, ErrDrugListUnavailable
		}
		list, err := u.drugListRepo.FindByID(tx, listID)
		if err != nil {
			u.log.Warnf("Failed to find drug list: %+v", err)
			return nil, err
		}
		if list == nil {
			return nil, ErrDrugListUnavailable
		}
		authority.DrugListID = &listID
	}

	if req.ClinicianListID != "" {
		listID, err := uuid.Parse(req.ClinicianListID)
		if err != nil {
			return nil, ErrClinicianListUnavailable
		}
		list, err := u.clinicianListRepo.FindByID(tx, listID)
		if err != nil {
			u.log.Warnf("Failed to find clinician list: %+v", err)
			return nil, err
		}
		if list == nil {
			return nil, ErrClinicianListUnavailable
		}
		authority.ClinicianListID = &listID
	}

	if err := u.authorityRepo.Update(tx, authority); err != nil {
		u.log.Warnf("Failed to update health authority settings: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionAuthoritySettings, "health_authority", id.String(), oldValue, req); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Re-read to pick up the bound list names for the response.
	updated, err := u.authorityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to reload health authority: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrHealthAuthorityNotFound
	}
	return converter.HealthAuthorityToResponse(updated), nil
}
