package birthday

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeargrid/yeargrid/internal/event_bus"
)

func setupServiceTest(t *testing.T) (*Service, *RepositoryStub, *event_bus.EventBus) {
	t.Helper()
	repo := NewRepositoryStub()
	bus := event_bus.NewEventBus()
	return NewService(repo, bus), repo, bus
}

func TestService_AddAndList(t *testing.T) {
	service, _, _ := setupServiceTest(t)
	ctx := context.Background()

	added, err := service.Add(ctx, Birthday{Name: "Alex", Month: 7, Day: 22, Category: CategoryFriend})
	require.NoError(t, err)
	assert.Len(t, added, 1)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, added, listed)
}

func TestService_Remove(t *testing.T) {
	service, _, _ := setupServiceTest(t)
	ctx := context.Background()

	_, err := service.Add(ctx, Birthday{Name: "Alex", Month: 7, Day: 22, Category: CategoryFriend})
	require.NoError(t, err)
	_, err = service.Add(ctx, Birthday{Name: "Mom", Month: 5, Day: 12, Category: CategoryFamily})
	require.NoError(t, err)

	remaining, err := service.Remove(ctx, "Alex")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Mom", remaining[0].Name)

	_, err = service.Remove(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_SeedOnlyWhenEmpty(t *testing.T) {
	service, _, _ := setupServiceTest(t)
	ctx := context.Background()

	seeded, didSeed, err := service.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, didSeed)
	assert.NotEmpty(t, seeded)

	again, didSeed, err := service.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, didSeed)
	assert.Equal(t, seeded, again)
}

func TestService_ListOrEmptyAbsorbsStoreFailure(t *testing.T) {
	service, repo, _ := setupServiceTest(t)
	repo.FailLoadsWith(errors.New("store is down"))

	got := service.ListOrEmpty(context.Background())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestService_WritesAnnounceOnBus(t *testing.T) {
	service, _, bus := setupServiceTest(t)
	ctx := context.Background()

	var published int
	unsubscribe := bus.Subscribe(event_bus.BirthdaysUpdated, func(event_bus.Event) error {
		published++
		return nil
	})
	defer unsubscribe()

	_, err := service.Add(ctx, Birthday{Name: "Alex", Month: 7, Day: 22, Category: CategoryFriend})
	require.NoError(t, err)
	assert.Equal(t, 1, published)

	_, err = service.Remove(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, 2, published)

	_, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, published, "reads must not announce")
}
