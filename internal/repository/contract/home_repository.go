package contract

import (
	"context"

	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HomeRepository interface {
	Create(ctx context.Context, home *entity.Home) error
	Update(ctx context.Context, home *entity.Home) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Home, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Home, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
