package implementation

import (
	"context"
	"errors"

	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/mapper"
	"dreamlife-be/internal/model"
	"dreamlife-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	modelEntry := r.mapper.ToModel(entry)

	// Upsert on the question text so reseeding refreshes answers in place
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "question"}},
			DoUpdates: clause.AssignmentColumns([]string{"answer", "question_embedding", "answer_embedding", "updated_at"}),
		}).
		Create(modelEntry).Error
	if err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(modelEntry)
	return nil
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context) ([]*entity.KnowledgeEntry, error) {
	var modelEntries []*model.KnowledgeEntry

	// Projected scan: the answer embedding stays in the database.
	err := r.db.WithContext(ctx).
		Select("id", "question", "answer", "question_embedding", "created_at", "updated_at").
		Find(&modelEntries).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelEntries), nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.KnowledgeEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *KnowledgeRepositoryImpl) FindLatest(ctx context.Context) (*entity.KnowledgeEntry, error) {
	var modelEntry model.KnowledgeEntry

	err := r.db.WithContext(ctx).
		Select("id", "question", "answer", "created_at", "updated_at").
		Order("created_at DESC").
		First(&modelEntry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelEntry), nil
}
