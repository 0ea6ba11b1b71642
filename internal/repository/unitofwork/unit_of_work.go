package unitofwork

import (
	"context"

	"tile-visualizer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatRepository() contract.ChatRepository
	TileRepository() contract.TileRepository
	HomeRepository() contract.HomeRepository
	GeneratedImageRepository() contract.GeneratedImageRepository
}
