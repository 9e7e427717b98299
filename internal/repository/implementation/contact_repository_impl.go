package implementation

import (
	"context"
	"errors"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/mapper"
	"dreamlife-be/internal/model"
	"dreamlife-be/internal/repository/contract"
	"dreamlife-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMapper(),
	}
}

func (r *ContactRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *entity.Contact) error {
	modelContact := r.mapper.ToModel(contact)
	if err := r.db.WithContext(ctx).Create(modelContact).Error; err != nil {
		return err
	}
	*contact = *r.mapper.ToEntity(modelContact)
	return nil
}

func (r *ContactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error) {
	var modelContact model.Contact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelContact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelContact), nil
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error) {
	var modelContacts []*model.Contact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelContacts).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelContacts), nil
}

func (r *ContactRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Contact{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContactRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ?", id).
		Update("status", status).Error
}
