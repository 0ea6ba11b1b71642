package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/repository/specification"
	"tile-visualizer-be/internal/repository/unitofwork"
	"tile-visualizer-be/pkg/imagegen"

	"github.com/google/uuid"
)

type IGeneratedImageService interface {
	Generate(ctx context.Context, userId string, req *dto.GenerateImageRequest) (*dto.GeneratedImageResponse, error)
	Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateGeneratedImageRequest) (*dto.GeneratedImageResponse, error)
	Delete(ctx context.Context, userId string, id uuid.UUID) error
}

type generatedImageService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  imagegen.Generator
}

func NewGeneratedImageService(uowFactory unitofwork.RepositoryFactory, generator imagegen.Generator) IGeneratedImageService {
	return &generatedImageService{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// authorize resolves a generated image and checks the caller owns its parent
// chat. Images have no owner column, so this two-step hop is the only
// ownership rule they have; keeping it in one place keeps it testable.
func (s *generatedImageService) authorize(ctx context.Context, uow unitofwork.UnitOfWork, userId string, id uuid.UUID) (*entity.GeneratedImage, error) {
	image, err := uow.GeneratedImageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: image.ChatId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrImageForbidden
	}

	return image, nil
}

func (s *generatedImageService) Generate(ctx context.Context, userId string, req *dto.GenerateImageRequest) (*dto.GeneratedImageResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrPromptRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: req.ChatId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	tile, err := uow.TileRepository().FindOne(ctx,
		specification.ByID{ID: req.TileId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, ErrTileNotFound
	}

	var homeUrl string
	if req.HomeId != nil {
		home, err := uow.HomeRepository().FindOne(ctx,
			specification.ByID{ID: *req.HomeId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if home == nil {
			return nil, ErrHomeNotFound
		}
		homeUrl = home.ImageUrl
	}

	// Single attempt against the generation service; nothing is persisted
	// unless it succeeds. Duplicate submissions produce duplicate rows.
	imageUrl, err := s.generator.Generate(ctx, tile.ImageUrl, homeUrl, strings.TrimSpace(req.Prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	image := entity.GeneratedImage{
		Id:        uuid.New(),
		ChatId:    req.ChatId,
		TileId:    req.TileId,
		HomeId:    req.HomeId,
		Prompt:    strings.TrimSpace(req.Prompt),
		ImageUrl:  imageUrl,
		Kept:      false,
		CreatedAt: time.Now(),
	}

	if err := uow.GeneratedImageRepository().Create(ctx, &image); err != nil {
		return nil, err
	}
	return toGeneratedImageResponse(&image), nil
}

func (s *generatedImageService) Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateGeneratedImageRequest) (*dto.GeneratedImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	image, err := s.authorize(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	// Keep is one-way: a kept image never reverts.
	if req.Kept != nil && *req.Kept {
		image.Kept = true
	}

	if err := uow.GeneratedImageRepository().Update(ctx, image); err != nil {
		return nil, err
	}
	return toGeneratedImageResponse(image), nil
}

func (s *generatedImageService) Delete(ctx context.Context, userId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	image, err := s.authorize(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	return uow.GeneratedImageRepository().Delete(ctx, image.Id)
}

func toGeneratedImageResponse(image *entity.GeneratedImage) *dto.GeneratedImageResponse {
	return &dto.GeneratedImageResponse{
		Id:        image.Id,
		ChatId:    image.ChatId,
		TileId:    image.TileId,
		HomeId:    image.HomeId,
		Prompt:    image.Prompt,
		ImageUrl:  image.ImageUrl,
		Kept:      image.Kept,
		CreatedAt: image.CreatedAt,
	}
}
