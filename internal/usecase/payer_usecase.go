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
	ErrPayerNotFound            = errors.New("payer not found")
	ErrCredentialNotRegistered  = errors.New("payer has no registered credential")
	ErrCredentialExists         = errors.New("payer already has a credential for this health authority")
	ErrReservedCredentialUser   = errors.New("user name is reserved")
	ErrCredentialAuthorityUnset = errors.New("health authority not found")
)

type PayerUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPayerRequest) (*dto.PayerResponse, error)
	GetPayers(ctx context.Context) (*dto.PayerListResponse, error)
	GetPayer(ctx context.Context, id uuid.UUID) (*dto.PayerResponse, error)
	UpdatePayer(ctx context.Context, id uuid.UUID, req *dto.UpdatePayerRequest) (*dto.PayerResponse, error)

	GetCredential(ctx context.Context, payerID uuid.UUID) (*dto.CredentialResponse, error)
	RegisterCredential(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error)
}

type payerUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	payerRepo     repository.PayerRepository
	authorityRepo repository.HealthAuthorityRepository
	auditService  service.AuditService
}

func NewPayerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	payerRepo repository.PayerRepository,
	authorityRepo repository.HealthAuthorityRepository,
	auditService service.AuditService,
) PayerUsecase {
	return &payerUsecase{
		db:            db,
		log:           log,
		payerRepo:     payerRepo,
		authorityRepo: authorityRepo,
		auditService:  auditService,
	}
}

func (u *payerUsecase) Register(ctx context.Context, req *dto.RegisterPayerRequest) (*dto.PayerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payer := &entity.Payer{
		PayerName:   req.PayerName,
		Email:       req.Email,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		Status:      entity.NormalizePayerStatus(req.Status),
	}

	if err := u.payerRepo.Create(tx, payer); err != nil {
		u.log.Warnf("Failed to register payer: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionPayerRegister, "payer", payer.ID.String(), converter.PayerToResponse(payer)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PayerToResponse(payer), nil
}

func (u *payerUsecase) GetPayers(ctx context.Context) (*dto.PayerListResponse, error) {
	payers, err := u.payerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find payers: %+v", err)
		return nil, err
	}

	responses := converter.PayersToResponses(payers)
	return &dto.PayerListResponse{Payers: responses, Total: len(responses)}, nil
}

func (u *payerUsecase) GetPayer(ctx context.Context, id uuid.UUID) (*dto.PayerResponse, error) {
	payer, err := u.payerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find payer: %+v", err)
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}
	return converter.PayerToResponse(payer), nil
}

func (u *payerUsecase) UpdatePayer(ctx context.Context, id uuid.UUID, req *dto.UpdatePayerRequest) (*dto.PayerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payer, err := u.payerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find payer: %+v", err)
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}

	oldValue := converter.PayerToResponse(payer)

	if req.PayerName != "" {
		payer.PayerName = req.PayerName
	}
	if req.Email != "" {
		payer.Email = req.Email
	}
	if req.Address != "" {
		payer.Address = req.Address
	}
	if req.ContactInfo != "" {
		payer.ContactInfo = req.ContactInfo
	}
	if req.Status != "" {
		payer.Status = entity.NormalizePayerStatus(req.Status)
	}

	if err := u.payerRepo.Update(tx, payer); err != nil {
		u.log.Warnf("Failed to update payer: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionPayerUpdate, "payer", id.String(), oldValue, converter.PayerToResponse(payer)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PayerToResponse(payer), nil
}

// GetCredential returns the payer's HA credential. A missing row and a
// legacy placeholder row both read as "not registered".
func (u *payerUsecase) GetCredential(ctx context.Context, payerID uuid.UUID) (*dto.CredentialResponse, error) {
	db := u.db.WithContext(ctx)

	payer, err := u.payerRepo.FindByID(db, payerID)
	if err != nil {
		u.log.Warnf("Failed to find payer: %+v", err)
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}

	credential, err := u.payerRepo.FindCredentialByPayerID(db, payerID)
	if err != nil {
		u.log.Warnf("Failed to find payer credential: %+v", err)
		return nil, err
	}
	if credential == nil || credential.IsSentinel() {
		return nil, ErrCredentialNotRegistered
	}

	return converter.CredentialToResponse(credential), nil
}

func (u *payerUsecase) RegisterCredential(ctx context.Context, payerID uuid.UUID, req *dto.RegisterCredentialRequest) (*dto.CredentialResponse, error) {
	if req.UserName == entity.SentinelCredentialUser {
		return nil, ErrReservedCredentialUser
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payer, err := u.payerRepo.FindByID(tx, payerID)
	if err != nil {
		u.log.Warnf("Failed to find payer: %+v", err)
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}

	authority, err := u.authorityRepo.FindByID(tx, req.HealthAuthorityID)
	if err != nil {
		u.log.Warnf("Failed to find health authority: %+v", err)
		return nil, err
	}
	if authority == nil {
		return nil, ErrCredentialAuthorityUnset
	}

	credential := &entity.PayerHACredential{
		PayerID:           payerID,
		HealthAuthorityID: req.HealthAuthorityID,
		UserName:          req.UserName,
		Code:              req.Code,
		Password:          req.Password,
		Status:            entity.NormalizePayerStatus(req.Status),
	}

	if err := u.payerRepo.CreateCredential(tx, credential); err != nil {
		if isDuplicateKeyError(err, "idx_payer_authority") {
			return nil, ErrCredentialExists
		}
		u.log.Warnf("Failed to register payer credential: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionCredentialRegister, "payer_credential", credential.ID.String(), map[string]interface{}{
		"payer_id":            payerID,
		"health_authority_id": req.HealthAuthorityID,
		"user_name":           req.UserName,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CredentialToResponse(credential), nil
}
