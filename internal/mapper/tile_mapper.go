package mapper

import (
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/model"
)

type TileMapper struct{}

func NewTileMapper() *TileMapper {
	return &TileMapper{}
}

func (m *TileMapper) ToEntity(t *model.Tile) *entity.Tile {
	if t == nil {
		return nil
	}

	return &entity.Tile{
		Id:         t.Id,
		UserId:     t.UserId,
		Name:       t.Name,
		ImageUrl:   t.ImageUrl,
		Size:       t.Size,
		Price:      t.Price,
		AddCatalog: t.AddCatalog,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TileMapper) ToModel(t *entity.Tile) *model.Tile {
	if t == nil {
		return nil
	}

	return &model.Tile{
		Id:         t.Id,
		UserId:     t.UserId,
		Name:       t.Name,
		ImageUrl:   t.ImageUrl,
		Size:       t.Size,
		Price:      t.Price,
		AddCatalog: t.AddCatalog,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TileMapper) ToEntities(tiles []*model.Tile) []*entity.Tile {
	entities := make([]*entity.Tile, len(tiles))
	for i, t := range tiles {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
