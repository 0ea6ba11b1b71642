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

type TileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TileMapper
}

func NewTileRepository(db *gorm.DB) contract.TileRepository {
	return &TileRepositoryImpl{
		db:     db,
		mapper: mapper.NewTileMapper(),
	}
}

func (r *TileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TileRepositoryImpl) Create(ctx context.Context, tile *entity.Tile) error {
	m := r.mapper.ToModel(tile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tile = *r.mapper.ToEntity(m)
	return nil
}

func (r *TileRepositoryImpl) Update(ctx context.Context, tile *entity.Tile) error {
	m := r.mapper.ToModel(tile)
	// Save writes every column, so cleared optional fields persist as NULL.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tile = *r.mapper.ToEntity(m)
	return nil
}

func (r *TileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tile{}, id).Error
}

func (r *TileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tile, error) {
	var m model.Tile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tile, error) {
	var models []*model.Tile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Tile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
