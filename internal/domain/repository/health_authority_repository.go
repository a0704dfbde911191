package repository

import (
	"health-admin-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthAuthorityRepository interface {
	CreateBatch(db *gorm.DB, authorities []entity.HealthAuthority) error
	FindAll(db *gorm.DB) ([]entity.HealthAuthority, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthAuthority, error)
	Update(db *gorm.DB, authority *entity.HealthAuthority) error
}
