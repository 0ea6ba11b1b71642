package mapper

import (
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/model"
)

type HomeMapper struct{}

func NewHomeMapper() *HomeMapper {
	return &HomeMapper{}
}

func (m *HomeMapper) ToEntity(h *model.Home) *entity.Home {
	if h == nil {
		return nil
	}

	return &entity.Home{
		Id:        h.Id,
		UserId:    h.UserId,
		Name:      h.Name,
		ImageUrl:  h.ImageUrl,
		CreatedAt: h.CreatedAt,
	}
}

func (m *HomeMapper) ToModel(h *entity.Home) *model.Home {
	if h == nil {
		return nil
	}

	return &model.Home{
		Id:        h.Id,
		UserId:    h.UserId,
		Name:      h.Name,
		ImageUrl:  h.ImageUrl,
		CreatedAt: h.CreatedAt,
	}
}

func (m *HomeMapper) ToEntities(homes []*model.Home) []*entity.Home {
	entities := make([]*entity.Home, len(homes))
	for i, h := range homes {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
