package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records the last request and returns a canned result.
type fakeGenerator struct {
	calls    int
	tileUrl  string
	homeUrl  string
	prompt   string
	imageUrl string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, tileURL, homeURL, prompt string) (string, error) {
	f.calls++
	f.tileUrl = tileURL
	f.homeUrl = homeURL
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.imageUrl, nil
}

func TestGenerateHappyPath(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{imageUrl: "https://cdn.example.com/generated/out.png"}
	svc := NewGeneratedImageService(factory, gen)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	tile := tileEntity("user-1", "marble")
	home := homeEntity("user-1", "loft")
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	require.NoError(t, uow.TileRepository().Create(ctx, tile))
	require.NoError(t, uow.HomeRepository().Create(ctx, home))

	resp, err := svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: tile.Id,
		HomeId: &home.Id,
		Prompt: "  warm evening light  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/generated/out.png", resp.ImageUrl)
	assert.False(t, resp.Kept)
	assert.Equal(t, "warm evening light", resp.Prompt)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, tile.ImageUrl, gen.tileUrl)
	assert.Equal(t, home.ImageUrl, gen.homeUrl)
	assert.Equal(t, "warm evening light", gen.prompt)

	stored, err := uow.GeneratedImageRepository().FindOne(ctx, specification.ByID{ID: resp.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, chat.Id, stored.ChatId)
}

func TestGenerateWithoutHome(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{imageUrl: "https://cdn.example.com/generated/out.png"}
	svc := NewGeneratedImageService(factory, gen)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	tile := tileEntity("user-1", "marble")
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	require.NoError(t, uow.TileRepository().Create(ctx, tile))

	resp, err := svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: tile.Id,
		Prompt: "bright hallway",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.HomeId)
	assert.Equal(t, "", gen.homeUrl)
}

func TestGenerateEmptyPromptSkipsGenerator(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{imageUrl: "https://cdn.example.com/generated/out.png"}
	svc := NewGeneratedImageService(factory, gen)

	_, err := svc.Generate(context.Background(), "user-1", &dto.GenerateImageRequest{
		ChatId: uuid.New(),
		TileId: uuid.New(),
		Prompt: "   ",
	})
	assert.ErrorIs(t, err, ErrPromptRequired)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateValidatesReferences(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{imageUrl: "https://cdn.example.com/generated/out.png"}
	svc := NewGeneratedImageService(factory, gen)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	tile := tileEntity("user-1", "marble")
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	require.NoError(t, uow.TileRepository().Create(ctx, tile))

	_, err := svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: uuid.New(),
		TileId: tile.Id,
		Prompt: "x",
	})
	assert.ErrorIs(t, err, ErrChatNotFound)

	_, err = svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: uuid.New(),
		Prompt: "x",
	})
	assert.ErrorIs(t, err, ErrTileNotFound)

	missingHome := uuid.New()
	_, err = svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: tile.Id,
		HomeId: &missingHome,
		Prompt: "x",
	})
	assert.ErrorIs(t, err, ErrHomeNotFound)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateCrossUserChatIsNotFound(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{imageUrl: "https://cdn.example.com/generated/out.png"}
	svc := NewGeneratedImageService(factory, gen)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-2", "Kitchen", time.Now())
	tile := tileEntity("user-1", "marble")
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	require.NoError(t, uow.TileRepository().Create(ctx, tile))

	_, err := svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: tile.Id,
		Prompt: "x",
	})
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestGenerateFailurePersistsNothing(t *testing.T) {
	factory := newTestFactory(t)
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	svc := NewGeneratedImageService(factory, gen)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	tile := tileEntity("user-1", "marble")
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	require.NoError(t, uow.TileRepository().Create(ctx, tile))

	_, err := svc.Generate(ctx, "user-1", &dto.GenerateImageRequest{
		ChatId: chat.Id,
		TileId: tile.Id,
		Prompt: "x",
	})
	assert.ErrorIs(t, err, ErrGenerationFailed)

	count, err := uow.GeneratedImageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateKeepIsOneWay(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGeneratedImageService(factory, &fakeGenerator{})
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	img := imageEntity(chat.Id, uuid.New())
	require.NoError(t, uow.GeneratedImageRepository().Create(ctx, img))

	kept := true
	resp, err := svc.Update(ctx, "user-1", img.Id, &dto.UpdateGeneratedImageRequest{Kept: &kept})
	require.NoError(t, err)
	assert.True(t, resp.Kept)

	// kept:false is ignored; the image stays promoted.
	unkept := false
	resp, err = svc.Update(ctx, "user-1", img.Id, &dto.UpdateGeneratedImageRequest{Kept: &unkept})
	require.NoError(t, err)
	assert.True(t, resp.Kept)
}

func TestImageOwnershipErrors(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGeneratedImageService(factory, &fakeGenerator{})
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-2", "Kitchen", time.Now())
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	img := imageEntity(chat.Id, uuid.New())
	require.NoError(t, uow.GeneratedImageRepository().Create(ctx, img))

	kept := true
	// Missing image and someone else's image fail differently.
	_, err := svc.Update(ctx, "user-1", uuid.New(), &dto.UpdateGeneratedImageRequest{Kept: &kept})
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = svc.Update(ctx, "user-1", img.Id, &dto.UpdateGeneratedImageRequest{Kept: &kept})
	assert.ErrorIs(t, err, ErrImageForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, "user-1", uuid.New()), ErrImageNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "user-1", img.Id), ErrImageForbidden)
}

func TestImageDelete(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGeneratedImageService(factory, &fakeGenerator{})
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	chat := chatEntity("user-1", "Kitchen", time.Now())
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	img := imageEntity(chat.Id, uuid.New())
	require.NoError(t, uow.GeneratedImageRepository().Create(ctx, img))

	require.NoError(t, svc.Delete(ctx, "user-1", img.Id))

	gone, err := uow.GeneratedImageRepository().FindOne(ctx, specification.ByID{ID: img.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)
}
