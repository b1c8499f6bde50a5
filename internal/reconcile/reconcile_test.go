package reconcile_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/mocks"
	"github.com/ordimint/mint-engine/internal/reconcile"
	"github.com/ordimint/mint-engine/internal/store"
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

func TestReconcile_RepairsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	reconciler := reconcile.NewReconciler(st, clock)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	st.EXPECT().RecomputeBatch(gomock.Any(), 1, now).Return(&store.ReconcileResult{
		BatchID:       1,
		MintedWallets: 7,
		WasSoldOut:    true,
		IsSoldOut:     false,
	}, nil)

	result, err := reconciler.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7, result.MintedWallets)
	assert.False(t, result.IsSoldOut)
}

func TestReconcileAll_WalksEveryBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	reconciler := reconcile.NewReconciler(st, clock)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Times(2)
	st.EXPECT().ListBatches(gomock.Any()).Return([]schema.Batch{{ID: 1}, {ID: 2}}, nil)
	st.EXPECT().RecomputeBatch(gomock.Any(), 1, now).Return(&store.ReconcileResult{BatchID: 1}, nil)
	st.EXPECT().RecomputeBatch(gomock.Any(), 2, now).Return(&store.ReconcileResult{BatchID: 2}, nil)

	results, err := reconciler.ReconcileAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestReconcile_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	reconciler := reconcile.NewReconciler(st, clock)

	clock.EXPECT().Now().Return(time.Now())
	st.EXPECT().RecomputeBatch(gomock.Any(), 1, gomock.Any()).
		Return(nil, errors.New("deadlock detected"))

	_, err := reconciler.Reconcile(context.Background(), 1)
	assert.Error(t, err)
}
