package service

import (
	"context"
	"time"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/repository/specification"
	"tile-visualizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITileService interface {
	GetAll(ctx context.Context, userId string) ([]*dto.TileResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateTileRequest) (*dto.TileResponse, error)
	Show(ctx context.Context, userId string, id uuid.UUID) (*dto.TileResponse, error)
	Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateTileRequest) (*dto.TileResponse, error)
	Delete(ctx context.Context, userId string, id uuid.UUID) error
	GetGenerated(ctx context.Context, userId string, id uuid.UUID) ([]*dto.GeneratedImageResponse, error)
}

type tileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTileService(uowFactory unitofwork.RepositoryFactory) ITileService {
	return &tileService{uowFactory: uowFactory}
}

func (s *tileService) GetAll(ctx context.Context, userId string) ([]*dto.TileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tiles, err := uow.TileRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst(),
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TileResponse, 0, len(tiles))
	for _, tile := range tiles {
		result = append(result, toTileResponse(tile))
	}
	return result, nil
}

func (s *tileService) Create(ctx context.Context, userId string, req *dto.CreateTileRequest) (*dto.TileResponse, error) {
	if req.ImageUrl == "" {
		return nil, ErrImageUrlRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tile := entity.Tile{
		Id:        uuid.New(),
		UserId:    userId, // owner comes from the token, never the payload
		Name:      req.Name,
		ImageUrl:  req.ImageUrl,
		Size:      req.Size,
		Price:     req.Price,
		CreatedAt: time.Now(),
	}
	if req.AddCatalog != nil {
		tile.AddCatalog = *req.AddCatalog
	}

	if err := uow.TileRepository().Create(ctx, &tile); err != nil {
		return nil, err
	}
	return toTileResponse(&tile), nil
}

func (s *tileService) Show(ctx context.Context, userId string, id uuid.UUID) (*dto.TileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tile, err := uow.TileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, ErrTileNotFound
	}
	return toTileResponse(tile), nil
}

func (s *tileService) Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateTileRequest) (*dto.TileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tile, err := uow.TileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, ErrTileNotFound
	}

	if req.Name != nil {
		tile.Name = *req.Name
	}
	if req.Size != nil {
		tile.Size = req.Size
	}
	if req.Price != nil {
		tile.Price = req.Price
	}
	if req.AddCatalog != nil {
		tile.AddCatalog = *req.AddCatalog
	}

	if err := uow.TileRepository().Update(ctx, tile); err != nil {
		return nil, err
	}
	return toTileResponse(tile), nil
}

func (s *tileService) Delete(ctx context.Context, userId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tile, err := uow.TileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tile == nil {
		return ErrTileNotFound
	}

	// No cascade: generated images referencing this tile stay put.
	return uow.TileRepository().Delete(ctx, id)
}

func (s *tileService) GetGenerated(ctx context.Context, userId string, id uuid.UUID) ([]*dto.GeneratedImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tile, err := uow.TileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, ErrTileNotFound
	}

	images, err := uow.GeneratedImageRepository().FindAll(ctx,
		specification.ByTileID{TileID: id},
		specification.OwnedViaChat{UserID: userId},
		specification.NewestFirst(),
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GeneratedImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, toGeneratedImageResponse(img))
	}
	return result, nil
}

func toTileResponse(tile *entity.Tile) *dto.TileResponse {
	return &dto.TileResponse{
		Id:         tile.Id,
		UserId:     tile.UserId,
		Name:       tile.Name,
		ImageUrl:   tile.ImageUrl,
		Size:       tile.Size,
		Price:      tile.Price,
		AddCatalog: tile.AddCatalog,
		CreatedAt:  tile.CreatedAt,
	}
}
