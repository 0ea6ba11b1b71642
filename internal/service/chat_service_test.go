package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCreateDefaultName(t *testing.T) {
	svc := NewChatService(newTestFactory(t))
	ctx := context.Background()

	chat, err := svc.Create(ctx, "user-1", &dto.CreateChatRequest{})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^Chat - [A-Z][a-z]{2} \d{1,2}, \d{1,2}:\d{2} (AM|PM)$`), chat.Name)
	assert.Equal(t, "user-1", chat.UserId)
}

func TestChatCreateExplicitName(t *testing.T) {
	svc := NewChatService(newTestFactory(t))
	ctx := context.Background()

	chat, err := svc.Create(ctx, "user-1", &dto.CreateChatRequest{Name: "Kitchen remodel"})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen remodel", chat.Name)
}

func TestChatOwnershipIsolation(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewChatService(factory)
	ctx := context.Background()

	chat, err := svc.Create(ctx, "user-1", &dto.CreateChatRequest{Name: "Private"})
	require.NoError(t, err)

	// Another caller cannot see, rename, or delete it.
	_, err = svc.Show(ctx, "user-2", chat.Id)
	assert.ErrorIs(t, err, ErrChatNotFound)

	name := "hijacked"
	_, err = svc.Update(ctx, "user-2", chat.Id, &dto.UpdateChatRequest{Name: &name})
	assert.ErrorIs(t, err, ErrChatNotFound)

	err = svc.Delete(ctx, "user-2", chat.Id)
	assert.ErrorIs(t, err, ErrChatNotFound)

	// And nothing was mutated.
	detail, err := svc.Show(ctx, "user-1", chat.Id)
	require.NoError(t, err)
	assert.Equal(t, "Private", detail.Chat.Name)
}

func TestChatGetAllNewestFirst(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	for i, name := range []string{"first", "second", "third"} {
		chat := chatEntity("user-1", name, time.Now().Add(time.Duration(i)*time.Minute))
		require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	}
	// Foreign chat must not appear.
	require.NoError(t, uow.ChatRepository().Create(ctx, chatEntity("user-2", "other", time.Now())))

	svc := NewChatService(factory)
	chats, err := svc.GetAll(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, chats, 3)
	assert.Equal(t, "third", chats[0].Name)
	assert.Equal(t, "first", chats[2].Name)
}

func TestChatGetAllEmpty(t *testing.T) {
	svc := NewChatService(newTestFactory(t))

	chats, err := svc.GetAll(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestChatUpdateRename(t *testing.T) {
	svc := NewChatService(newTestFactory(t))
	ctx := context.Background()

	chat, err := svc.Create(ctx, "user-1", &dto.CreateChatRequest{Name: "before"})
	require.NoError(t, err)

	name := "after"
	updated, err := svc.Update(ctx, "user-1", chat.Id, &dto.UpdateChatRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	require.NotNil(t, updated.UpdatedAt)
}

func TestChatDeleteCascadesImages(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewChatService(factory)
	ctx := context.Background()

	chat, err := svc.Create(ctx, "user-1", &dto.CreateChatRequest{Name: "doomed"})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	img := imageEntity(chat.Id, uuid.New())
	require.NoError(t, uow.GeneratedImageRepository().Create(ctx, img))

	require.NoError(t, svc.Delete(ctx, "user-1", chat.Id))

	_, err = svc.Show(ctx, "user-1", chat.Id)
	assert.True(t, errors.Is(err, ErrChatNotFound))

	count, err := uow.GeneratedImageRepository().Count(ctx, specification.ByChatID{ChatID: chat.Id})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestChatDeleteMissingIsNotFound(t *testing.T) {
	svc := NewChatService(newTestFactory(t))

	err := svc.Delete(context.Background(), "user-1", uuid.New())
	assert.ErrorIs(t, err, ErrChatNotFound)
}
