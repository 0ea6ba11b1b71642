package implementation

import (
	"context"
	"errors"

	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/mapper"
	"tile-visualizer-be/internal/model"
	"tile-visualizer-be/internal/repository/contract"
	"tile-visualizer-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GeneratedImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GeneratedImageMapper
}

func NewGeneratedImageRepository(db *gorm.DB) contract.GeneratedImageRepository {
	return &GeneratedImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewGeneratedImageMapper(),
	}
}

func (r *GeneratedImageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GeneratedImageRepositoryImpl) Create(ctx context.Context, image *entity.GeneratedImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *GeneratedImageRepositoryImpl) Update(ctx context.Context, image *entity.GeneratedImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *GeneratedImageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GeneratedImage{}, id).Error
}

func (r *GeneratedImageRepositoryImpl) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatId).Delete(&model.GeneratedImage{}).Error
}

func (r *GeneratedImageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedImage, error) {
	var m model.GeneratedImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GeneratedImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedImage, error) {
	var models []*model.GeneratedImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GeneratedImageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GeneratedImage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
