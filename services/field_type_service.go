package services

import (
	"context"
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"
	"formbuilder.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FieldTypeServiceError alan tipi kataloğu hataları
type FieldTypeServiceError string

func (e FieldTypeServiceError) Error() string { return string(e) }

const (
	ErrFieldTypeNotFound FieldTypeServiceError = "alan tipi bulunamadı"
	ErrFieldTypeInUse    FieldTypeServiceError = "alan tipi form alanlarında kullanıldığı için silinemez"
)

// IFieldTypeService alan tipi kataloğu işlemleri.
type IFieldTypeService interface {
	GetFieldType(ctx context.Context, id uint) (*models.FieldType, error)
	ListActiveFieldTypes(ctx context.Context) ([]models.FieldType, error)
	ListAllFieldTypes(ctx context.Context) ([]models.FieldType, error)
	DeleteFieldType(ctx context.Context, id uint) error
}

// FieldTypeService IFieldTypeService arayüzünü uygular.
type FieldTypeService struct {
	repo repositories.IFieldTypeRepository
	db   *gorm.DB
}

var _ IFieldTypeService = (*FieldTypeService)(nil)

func NewFieldTypeService(db *gorm.DB) IFieldTypeService {
	return &FieldTypeService{
		repo: repositories.NewFieldTypeRepository(db),
		db:   db,
	}
}

func (s *FieldTypeService) GetFieldType(ctx context.Context, id uint) (*models.FieldType, error) {
	fieldType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFieldTypeNotFound)
		}
		return nil, err
	}
	return fieldType, nil
}

// ListActiveFieldTypes aktif tipleri isme göre sıralı döner.
func (s *FieldTypeService) ListActiveFieldTypes(ctx context.Context) ([]models.FieldType, error) {
	return s.repo.FindAllActive(ctx)
}

func (s *FieldTypeService) ListAllFieldTypes(ctx context.Context) ([]models.FieldType, error) {
	return s.repo.FindAll(ctx)
}

// DeleteFieldType herhangi bir alan tarafından kullanılan tipi silmez.
func (s *FieldTypeService) DeleteFieldType(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewFieldTypeRepositoryTx(tx)

		if _, err := repoTx.FindByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return wrapKind(ErrNotFound, ErrFieldTypeNotFound)
			}
			return err
		}

		refs, err := repoTx.CountFieldReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return wrapKind(ErrReferentialIntegrity, ErrFieldTypeInUse)
		}

		return repoTx.Delete(ctx, id)
	})

	if txErr != nil {
		if !errors.Is(txErr, ErrNotFound) && !errors.Is(txErr, ErrReferentialIntegrity) {
			configslog.Log.Error("DeleteFieldType transaction failed", zap.Uint("id", id), zap.Error(txErr))
		}
		return txErr
	}
	configslog.SLog.Infof("Alan tipi silindi: ID %d", id)
	return nil
}
