package service

import (
	"context"
	"fmt"
	"time"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/repository/specification"
	"tile-visualizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChatService interface {
	GetAll(ctx context.Context, userId string) ([]*dto.ChatResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
	Show(ctx context.Context, userId string, id uuid.UUID) (*dto.ChatDetailResponse, error)
	Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateChatRequest) (*dto.ChatResponse, error)
	Delete(ctx context.Context, userId string, id uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatService(uowFactory unitofwork.RepositoryFactory) IChatService {
	return &chatService{uowFactory: uowFactory}
}

func (s *chatService) GetAll(ctx context.Context, userId string) ([]*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst(),
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		result = append(result, toChatResponse(chat))
	}
	return result, nil
}

func (s *chatService) Create(ctx context.Context, userId string, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := req.Name
	if name == "" {
		// Matches the client's default, e.g. "Chat - Jan 2, 3:04 PM".
		name = fmt.Sprintf("Chat - %s", time.Now().Format("Jan 2, 3:04 PM"))
	}

	chat := entity.Chat{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatRepository().Create(ctx, &chat); err != nil {
		return nil, err
	}
	return toChatResponse(&chat), nil
}

func (s *chatService) Show(ctx context.Context, userId string, id uuid.UUID) (*dto.ChatDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	images, err := uow.GeneratedImageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chat.Id},
		specification.NewestFirst(),
	)
	if err != nil {
		return nil, err
	}

	imageResponses := make([]*dto.GeneratedImageResponse, 0, len(images))
	for _, img := range images {
		imageResponses = append(imageResponses, toGeneratedImageResponse(img))
	}

	return &dto.ChatDetailResponse{
		Chat:   toChatResponse(chat),
		Images: imageResponses,
	}, nil
}

func (s *chatService) Update(ctx context.Context, userId string, id uuid.UUID, req *dto.UpdateChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	if req.Name != nil {
		chat.Name = *req.Name
	}
	now := time.Now()
	chat.UpdatedAt = &now

	if err := uow.ChatRepository().Update(ctx, chat); err != nil {
		return nil, err
	}
	return toChatResponse(chat), nil
}

func (s *chatService) Delete(ctx context.Context, userId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if chat == nil {
		return ErrChatNotFound
	}

	// Generated images hang off the chat, so both go in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.GeneratedImageRepository().DeleteByChatId(ctx, id); err != nil {
		return err
	}
	if err := uow.ChatRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toChatResponse(chat *entity.Chat) *dto.ChatResponse {
	return &dto.ChatResponse{
		Id:        chat.Id,
		UserId:    chat.UserId,
		Name:      chat.Name,
		CreatedAt: chat.CreatedAt,
		UpdatedAt: chat.UpdatedAt,
	}
}
