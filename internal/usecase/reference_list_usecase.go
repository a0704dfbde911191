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
	ErrDiagnosisListNotFound = errors.New("diagnosis list not found")
	ErrDrugListNotFound      = errors.New("drug list not found")
	ErrClinicianListNotFound = errors.New("clinician list not found")
)

type ReferenceListUsecase interface {
	CreateDiagnosisLists(ctx context.Context, req *dto.CreateDiagnosisListsRequest) ([]dto.ReferenceListResponse, error)
	GetDiagnosisLists(ctx context.Context) (*dto.ReferenceListListResponse, error)
	GetDiagnosisList(ctx context.Context, id uuid.UUID) (*dto.DiagnosisListDetailResponse, error)
	UpdateDiagnosisList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error)
	DeleteDiagnosisList(ctx context.Context, id uuid.UUID) error

	CreateDrugLists(ctx context.Context, req *dto.CreateDrugListsRequest) ([]dto.ReferenceListResponse, error)
	GetDrugLists(ctx context.Context) (*dto.ReferenceListListResponse, error)
	GetDrugList(ctx context.Context, id uuid.UUID) (*dto.DrugListDetailResponse, error)
	UpdateDrugList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error)
	DeleteDrugList(ctx context.Context, id uuid.UUID) error

	CreateClinicianLists(ctx context.Context, req *dto.CreateClinicianListsRequest) ([]dto.ReferenceListResponse, error)
	GetClinicianLists(ctx context.Context) (*dto.ReferenceListListResponse, error)
	GetClinicianList(ctx context.Context, id uuid.UUID) (*dto.ClinicianListDetailResponse, error)
	UpdateClinicianList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error)
	DeleteClinicianList(ctx context.Context, id uuid.UUID) error
}

type referenceListUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	diagnosisListRepo repository.DiagnosisListRepository
	drugListRepo      repository.DrugListRepository
	clinicianListRepo repository.ClinicianListRepository
	auditService      service.AuditService
}

func NewReferenceListUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisListRepo repository.DiagnosisListRepository,
	drugListRepo repository.DrugListRepository,
	clinicianListRepo repository.ClinicianListRepository,
	auditService service.AuditService,
) ReferenceListUsecase {
	return &referenceListUsecase{
		db:                db,
		log:               log,
		diagnosisListRepo: diagnosisListRepo,
		drugListRepo:      drugListRepo,
		clinicianListRepo: clinicianListRepo,
		auditService:      auditService,
	}
}

// Diagnosis lists

func (u *referenceListUsecase) CreateDiagnosisLists(ctx context.Context, req *dto.CreateDiagnosisListsRequest) ([]dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lists := make([]entity.DiagnosisList, len(req.DiagnosisList))
	for i, entry := range req.DiagnosisList {
		lists[i] = entity.DiagnosisList{
			Name:   entry.Name,
			Code:   entry.Code,
			Status: entity.NormalizeStatus(entry.Status),
		}
	}

	if err := u.diagnosisListRepo.CreateBatch(tx, lists); err != nil {
		u.log.Warnf("Failed to create diagnosis lists: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	for i := range lists {
		if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionListCreate, "diagnosis_list", lists[i].ID.String(), converter.DiagnosisListToResponse(&lists[i])); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisListsToResponses(lists), nil
}

func (u *referenceListUsecase) GetDiagnosisLists(ctx context.Context) (*dto.ReferenceListListResponse, error) {
	lists, err := u.diagnosisListRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find diagnosis lists: %+v", err)
		return nil, err
	}

	responses := converter.DiagnosisListsToResponses(lists)
	return &dto.ReferenceListListResponse{Lists: responses, Total: len(responses)}, nil
}

func (u *referenceListUsecase) GetDiagnosisList(ctx context.Context, id uuid.UUID) (*dto.DiagnosisListDetailResponse, error) {
	list, err := u.diagnosisListRepo.FindByIDWithItems(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDiagnosisListNotFound
	}
	return converter.DiagnosisListToDetailResponse(list), nil
}

func (u *referenceListUsecase) UpdateDiagnosisList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.diagnosisListRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDiagnosisListNotFound
	}

	oldValue := converter.DiagnosisListToResponse(list)
	list.Name = req.Name
	list.Code = req.Code
	list.Status = entity.NormalizeStatus(req.Status)

	if err := u.diagnosisListRepo.Update(tx, list); err != nil {
		u.log.Warnf("Failed to update diagnosis list: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionListUpdate, "diagnosis_list", id.String(), oldValue, converter.DiagnosisListToResponse(list)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisListToResponse(list), nil
}

func (u *referenceListUsecase) DeleteDiagnosisList(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.diagnosisListRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis list: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDiagnosisListNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionListDelete, "diagnosis_list", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

// Drug lists

func (u *referenceListUsecase) CreateDrugLists(ctx context.Context, req *dto.CreateDrugListsRequest) ([]dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lists := make([]entity.DrugList, len(req.DrugList))
	for i, entry := range req.DrugList {
		lists[i] = entity.DrugList{
			Name:   entry.Name,
			Code:   entry.Code,
			Status: entity.NormalizeStatus(entry.Status),
		}
	}

	if err := u.drugListRepo.CreateBatch(tx, lists); err != nil {
		u.log.Warnf("Failed to create drug lists: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	for i := range lists {
		if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionListCreate, "drug_list", lists[i].ID.String(), converter.DrugListToResponse(&lists[i])); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DrugListsToResponses(lists), nil
}

func (u *referenceListUsecase) GetDrugLists(ctx context.Context) (*dto.ReferenceListListResponse, error) {
	lists, err := u.drugListRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find drug lists: %+v", err)
		return nil, err
	}

	responses := converter.DrugListsToResponses(lists)
	return &dto.ReferenceListListResponse{Lists: responses, Total: len(responses)}, nil
}

func (u *referenceListUsecase) GetDrugList(ctx context.Context, id uuid.UUID) (*dto.DrugListDetailResponse, error) {
	list, err := u.drugListRepo.FindByIDWithItems(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find drug list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDrugListNotFound
	}
	return converter.DrugListToDetailResponse(list), nil
}

func (u *referenceListUsecase) UpdateDrugList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.drugListRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find drug list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDrugListNotFound
	}

	oldValue := converter.DrugListToResponse(list)
	list.Name = req.Name
	list.Code = req.Code
	list.Status = entity.NormalizeStatus(req.Status)

	if err := u.drugListRepo.Update(tx, list); err != nil {
		u.log.Warnf("Failed to update drug list: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionListUpdate, "drug_list", id.String(), oldValue, converter.DrugListToResponse(list)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DrugListToResponse(list), nil
}

func (u *referenceListUsecase) DeleteDrugList(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.drugListRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete drug list: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDrugListNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionListDelete, "drug_list", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

// Clinician lists

func (u *referenceListUsecase) CreateClinicianLists(ctx context.Context, req *dto.CreateClinicianListsRequest) ([]dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lists := make([]entity.ClinicianList, len(req.ClinicianList))
	for i, entry := range req.ClinicianList {
		lists[i] = entity.ClinicianList{
			Name:   entry.Name,
			Code:   entry.Code,
			Status: entity.NormalizeStatus(entry.Status),
		}
	}

	if err := u.clinicianListRepo.CreateBatch(tx, lists); err != nil {
		u.log.Warnf("Failed to create clinician lists: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	for i := range lists {
		if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionListCreate, "clinician_list", lists[i].ID.String(), converter.ClinicianListToResponse(&lists[i])); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicianListsToResponses(lists), nil
}

func (u *referenceListUsecase) GetClinicianLists(ctx context.Context) (*dto.ReferenceListListResponse, error) {
	lists, err := u.clinicianListRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find clinician lists: %+v", err)
		return nil, err
	}

	responses := converter.ClinicianListsToResponses(lists)
	return &dto.ReferenceListListResponse{Lists: responses, Total: len(responses)}, nil
}

func (u *referenceListUsecase) GetClinicianList(ctx context.Context, id uuid.UUID) (*dto.ClinicianListDetailResponse, error) {
	list, err := u.clinicianListRepo.FindByIDWithItems(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinician list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrClinicianListNotFound
	}
	return converter.ClinicianListToDetailResponse(list), nil
}

func (u *referenceListUsecase) UpdateClinicianList(ctx context.Context, id uuid.UUID, req *dto.UpdateListRequest) (*dto.ReferenceListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.clinicianListRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinician list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrClinicianListNotFound
	}

	oldValue := converter.ClinicianListToResponse(list)
	list.Name = req.Name
	list.Code = req.Code
	list.Status = entity.NormalizeStatus(req.Status)

	if err := u.clinicianListRepo.Update(tx, list); err != nil {
		u.log.Warnf("Failed to update clinician list: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionListUpdate, "clinician_list", id.String(), oldValue, converter.ClinicianListToResponse(list)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicianListToResponse(list), nil
}

func (u *referenceListUsecase) DeleteClinicianList(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.clinicianListRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete clinician list: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrClinicianListNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionListDelete, "clinician_list", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}
