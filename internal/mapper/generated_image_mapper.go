package mapper

import (
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/model"
)

type GeneratedImageMapper struct{}

func NewGeneratedImageMapper() *GeneratedImageMapper {
	return &GeneratedImageMapper{}
}

func (m *GeneratedImageMapper) ToEntity(g *model.GeneratedImage) *entity.GeneratedImage {
	if g == nil {
		return nil
	}

	return &entity.GeneratedImage{
		Id:        g.Id,
		ChatId:    g.ChatId,
		TileId:    g.TileId,
		HomeId:    g.HomeId,
		Prompt:    g.Prompt,
		ImageUrl:  g.ImageUrl,
		Kept:      g.Kept,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GeneratedImageMapper) ToModel(g *entity.GeneratedImage) *model.GeneratedImage {
	if g == nil {
		return nil
	}

	return &model.GeneratedImage{
		Id:        g.Id,
		ChatId:    g.ChatId,
		TileId:    g.TileId,
		HomeId:    g.HomeId,
		Prompt:    g.Prompt,
		ImageUrl:  g.ImageUrl,
		Kept:      g.Kept,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GeneratedImageMapper) ToEntities(images []*model.GeneratedImage) []*entity.GeneratedImage {
	entities := make([]*entity.GeneratedImage, len(images))
	for i, g := range images {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
