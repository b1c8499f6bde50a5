package progression_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/mocks"
	"github.com/ordimint/mint-engine/internal/progression"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testPriorityBuffer = 30 * time.Second

// testControllerMocks contains all the mocks needed for testing the controller
type testControllerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	cooldowns  *mocks.MockCooldownProvider
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
	controller *progression.Controller
}

// setupTestController creates all the mocks and controller for testing
func setupTestController(t *testing.T) *testControllerMocks {
	ctrl := gomock.NewController(t)

	tm := &testControllerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		cooldowns: mocks.NewMockCooldownProvider(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.controller = progression.NewController(tm.store, tm.cooldowns, tm.publisher, tm.clock, testPriorityBuffer)

	return tm
}

// tearDownTestController cleans up the test mocks
func tearDownTestController(tm *testControllerMocks) {
	tm.ctrl.Finish()
}

func TestTickCooldown_ActiveBatchIsNoOp(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 2,
	}, nil)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{})
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, domain.ProgressionActive, result.Status)
	assert.Equal(t, 2, result.NewBatch)
}

func TestTickCooldown_CooldownStillRunning(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := soldOutAt.Add(5 * time.Minute)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 1,
		SoldOutAt:    &soldOutAt,
		Version:      3,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 1).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{})
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, domain.ProgressionCooldown, result.Status)
	assert.Equal(t, 10*time.Minute, result.TimeLeft)
}

func TestTickCooldown_PriorityNarrowsTheWindow(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// 10s short of the full cooldown but inside the priority buffer.
	now := soldOutAt.Add(15*time.Minute - 10*time.Second)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 1,
		SoldOutAt:    &soldOutAt,
		Version:      3,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 1).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{
		{ID: 1, IsSoldOut: true},
		{ID: 2},
	}, nil)
	tm.store.EXPECT().AdvanceCurrentBatch(gomock.Any(), 1, 2, int64(3)).Return(true, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{Priority: true})
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, domain.ProgressionAdvanced, result.Status)
}

func TestTickCooldown_ForceBypassesElapsedCheck(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := soldOutAt.Add(time.Second)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 1,
		SoldOutAt:    &soldOutAt,
		Version:      1,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 1).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{
		{ID: 1, IsSoldOut: true},
		{ID: 2},
	}, nil)
	tm.store.EXPECT().AdvanceCurrentBatch(gomock.Any(), 1, 2, int64(1)).Return(true, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{Force: true})
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 2, result.NewBatch)
}

func TestTickCooldown_SkipsSoldOutBatches(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := soldOutAt.Add(time.Hour)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 1,
		SoldOutAt:    &soldOutAt,
		Version:      1,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 1).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	// Batch 2 also sold out while batch 1 was in cooldown.
	tm.store.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{
		{ID: 1, IsSoldOut: true},
		{ID: 2, IsSoldOut: true},
		{ID: 3},
	}, nil)
	tm.store.EXPECT().AdvanceCurrentBatch(gomock.Any(), 1, 3, int64(1)).Return(true, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.SaleEvent) error {
			assert.Equal(t, domain.EventTypeBatchAdvanced, event.EventType)
			assert.Equal(t, 3, event.BatchID)
			return nil
		})

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{})
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 3, result.NewBatch)
}

func TestTickCooldown_NoNextBatch(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := soldOutAt.Add(time.Hour)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 3,
		SoldOutAt:    &soldOutAt,
		Version:      5,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 3).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{
		{ID: 1, IsSoldOut: true},
		{ID: 2, IsSoldOut: true},
		{ID: 3, IsSoldOut: true},
	}, nil)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{})
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, domain.ProgressionNoNextBatch, result.Status)
	assert.Equal(t, 3, result.NewBatch)
}

func TestTickCooldown_LostRaceReportsPostState(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	soldOutAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := soldOutAt.Add(time.Hour)

	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 1,
		SoldOutAt:    &soldOutAt,
		Version:      1,
	}, nil)
	tm.cooldowns.EXPECT().Cooldown(gomock.Any(), 1).Return(15*time.Minute, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{
		{ID: 1, IsSoldOut: true},
		{ID: 2},
	}, nil)
	// Another replica advanced first; the compare-and-set loses.
	tm.store.EXPECT().AdvanceCurrentBatch(gomock.Any(), 1, 2, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetCurrentBatchState(gomock.Any()).Return(&schema.CurrentBatchState{
		ID:           schema.CurrentBatchStateID,
		CurrentBatch: 2,
		Version:      2,
	}, nil)

	result, err := tm.controller.TickCooldown(context.Background(), progression.TickOptions{})
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, domain.ProgressionActive, result.Status)
	assert.Equal(t, 2, result.NewBatch)
}

func TestStoreCooldowns_OverrideWinsOverDefault(t *testing.T) {
	tm := setupTestController(t)
	defer tearDownTestController(tm)

	provider := progression.NewStoreCooldowns(tm.store, 15*time.Minute)

	override := 5 * time.Minute
	tm.store.EXPECT().GetCooldownOverride(gomock.Any(), 1).Return(&override, nil)
	tm.store.EXPECT().GetCooldownOverride(gomock.Any(), 2).Return(nil, nil)

	got, err := provider.Cooldown(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, got)

	got, err = provider.Cooldown(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, got)
}
