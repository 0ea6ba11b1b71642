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

type HomeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HomeMapper
}

func NewHomeRepository(db *gorm.DB) contract.HomeRepository {
	return &HomeRepositoryImpl{
		db:     db,
		mapper: mapper.NewHomeMapper(),
	}
}

func (r *HomeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HomeRepositoryImpl) Create(ctx context.Context, home *entity.Home) error {
	m := r.mapper.ToModel(home)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*home = *r.mapper.ToEntity(m)
	return nil
}

func (r *HomeRepositoryImpl) Update(ctx context.Context, home *entity.Home) error {
	m := r.mapper.ToModel(home)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*home = *r.mapper.ToEntity(m)
	return nil
}

func (r *HomeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Home{}, id).Error
}

func (r *HomeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Home, error) {
	var m model.Home
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HomeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Home, error) {
	var models []*model.Home
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *HomeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Home{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
