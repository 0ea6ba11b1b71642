package contract

import (
	"context"

	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TileRepository interface {
	Create(ctx context.Context, tile *entity.Tile) error
	Update(ctx context.Context, tile *entity.Tile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
