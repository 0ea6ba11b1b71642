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

type IHomeService interface {
	GetAll(ctx context.Context, userId string) ([]*dto.HomeResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateHomeRequest) (*dto.HomeResponse, error)
	Show(ctx context.Context, userId string, id uuid.UUID) (*dto.HomeResponse, error)
	Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateHomeRequest) (*dto.HomeResponse, error)
	Delete(ctx context.Context, userId string, id uuid.UUID) error
}

type homeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHomeService(uowFactory unitofwork.RepositoryFactory) IHomeService {
	return &homeService{uowFactory: uowFactory}
}

func (s *homeService) GetAll(ctx context.Context, userId string) ([]*dto.HomeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	homes, err := uow.HomeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst(),
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.HomeResponse, 0, len(homes))
	for _, home := range homes {
		result = append(result, toHomeResponse(home))
	}
	return result, nil
}

func (s *homeService) Create(ctx context.Context, userId string, req *dto.CreateHomeRequest) (*dto.HomeResponse, error) {
	if req.ImageUrl == "" {
		return nil, ErrImageUrlRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	home := entity.Home{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		ImageUrl:  req.ImageUrl,
		CreatedAt: time.Now(),
	}

	if err := uow.HomeRepository().Create(ctx, &home); err != nil {
		return nil, err
	}
	return toHomeResponse(&home), nil
}

func (s *homeService) Show(ctx context.Context, userId string, id uuid.UUID) (*dto.HomeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	home, err := uow.HomeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if home == nil {
		return nil, ErrHomeNotFound
	}
	return toHomeResponse(home), nil
}

func (s *homeService) Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateHomeRequest) (*dto.HomeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	home, err := uow.HomeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if home == nil {
		return nil, ErrHomeNotFound
	}

	if req.Name != nil {
		home.Name = *req.Name
	}

	if err := uow.HomeRepository().Update(ctx, home); err != nil {
		return nil, err
	}
	return toHomeResponse(home), nil
}

func (s *homeService) Delete(ctx context.Context, userId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	home, err := uow.HomeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if home == nil {
		return ErrHomeNotFound
	}

	return uow.HomeRepository().Delete(ctx, id)
}

func toHomeResponse(home *entity.Home) *dto.HomeResponse {
	return &dto.HomeResponse{
		Id:        home.Id,
		UserId:    home.UserId,
		Name:      home.Name,
		ImageUrl:  home.ImageUrl,
		CreatedAt: home.CreatedAt,
	}
}
