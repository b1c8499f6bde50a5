package payment_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/mocks"
	"github.com/ordimint/mint-engine/internal/payment"
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

const (
	testOrderID    = "0d4c7dc1-6c0c-4a5a-9a33-6a5a1c5f0d10"
	testBuyerAddr  = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	testPayAddr    = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testPriceSats  = int64(100_000)
	testTxID       = "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16"
	testSecondTxID = "6f7cf9580f1c2dfb3c4d5d043cdbb128c640e3f20161245aa7372e9666168516"
)

// testVerifierMocks contains all the mocks needed for testing the verifier
type testVerifierMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	source    *mocks.MockTxSource
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	verifier  *payment.Verifier
}

// setupTestVerifier creates all the mocks and verifier for testing
func setupTestVerifier(t *testing.T) *testVerifierMocks {
	ctrl := gomock.NewController(t)

	tm := &testVerifierMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		source:    mocks.NewMockTxSource(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.verifier = payment.NewVerifier(tm.store, tm.source, tm.publisher, tm.clock)

	return tm
}

// tearDownTestVerifier cleans up the test mocks
func tearDownTestVerifier(tm *testVerifierMocks) {
	tm.ctrl.Finish()
}

// pendingOrder builds a pending test order created at the given time
func pendingOrder(createdAt time.Time) *schema.Order {
	return &schema.Order{
		ID:             testOrderID,
		BTCAddress:     testBuyerAddr,
		Quantity:       1,
		TotalSats:      testPriceSats,
		PaymentAddress: testPayAddr,
		BatchID:        1,
		Status:         domain.OrderStatusPending,
		CreatedAt:      createdAt,
	}
}

func TestVerifyPayment_OrderNotFound(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(nil, nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Nil(t, result)
}

func TestVerifyPayment_AlreadyPaidIsIdempotent(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	order := pendingOrder(time.Now())
	order.Status = domain.OrderStatusPaid
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	// No fetch, no claim, no credit.

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
}

func TestVerifyPayment_FailedOrderIsNotVerified(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	order := pendingOrder(time.Now())
	order.Status = domain.OrderStatusFailed
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, domain.OrderStatusFailed, result.Status)
}

func TestVerifyPayment_IndexerFailureReturnsUnverified(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	order := pendingOrder(time.Now())
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).
		Return(nil, errors.New("indexer timeout"))

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, testPriceSats, result.ExpectedSats)
}

func TestVerifyPayment_IgnoresTransactionsBeforeOrderCreation(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: createdAt.Add(-time.Hour),
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	// The old transaction must not be claimed.
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(int64(0), nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, int64(0), result.CreditedSats)
}

func TestVerifyPayment_IgnoresTransactionsToOtherAddresses(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: createdAt.Add(time.Minute),
			Outputs:   []domain.TxOutput{{Address: testBuyerAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(int64(0), nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestVerifyPayment_PartialPaymentStaysPending(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(time.Minute)
	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats / 2}},
		},
	}, nil)
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testTxID, testOrderID, testPriceSats/2, txTime).
		Return(true, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats/2, nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, testPriceSats/2, result.CreditedSats)
	assert.Equal(t, testPriceSats, result.ExpectedSats)
}

func TestVerifyPayment_PartialPaymentsAccumulateAcrossCalls(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(2 * time.Minute)
	now := createdAt.Add(3 * time.Minute)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	// Second half arrives; the first half was claimed by an earlier call.
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testSecondTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats / 2}},
		},
	}, nil)
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testSecondTxID, testOrderID, testPriceSats/2, txTime).
		Return(true, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats, nil)

	paidOrder := *order
	paidOrder.Status = domain.OrderStatusPaid
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().CreditOrderPaid(gomock.Any(), testOrderID, now).Return(&store.CreditResult{
		Order:     &paidOrder,
		Batch:     &schema.Batch{ID: 1, MaxWallets: 10, MintedWallets: 1},
		NewlyPaid: true,
	}, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.SaleEvent) error {
			assert.Equal(t, domain.EventTypeOrderPaid, event.EventType)
			assert.Equal(t, testOrderID, event.OrderID)
			return nil
		})

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
	assert.Equal(t, testPriceSats, result.CreditedSats)
}

func TestVerifyPayment_LostClaimStillCountsLedgerTotal(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(time.Minute)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	// Another verifier claimed the transaction for this same order first.
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testTxID, testOrderID, testPriceSats, txTime).
		Return(false, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats, nil)

	now := createdAt.Add(2 * time.Minute)
	paidOrder := *order
	paidOrder.Status = domain.OrderStatusPaid
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().CreditOrderPaid(gomock.Any(), testOrderID, now).Return(&store.CreditResult{
		Order:     &paidOrder,
		NewlyPaid: false,
	}, nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.True(t, result.Verified)
}

func TestVerifyPayment_SoldOutPublishesBatchEvent(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(time.Minute)
	now := createdAt.Add(2 * time.Minute)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testTxID, testOrderID, testPriceSats, txTime).
		Return(true, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats, nil)

	paidOrder := *order
	paidOrder.Status = domain.OrderStatusPaid
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().CreditOrderPaid(gomock.Any(), testOrderID, now).Return(&store.CreditResult{
		Order:           &paidOrder,
		Batch:           &schema.Batch{ID: 1, MaxWallets: 10, MintedWallets: 10, IsSoldOut: true},
		NewlyPaid:       true,
		SoldOut:         true,
		NewlySoldOut:    true,
		CooldownStarted: true,
	}, nil)

	var events []domain.EventType
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.SaleEvent) error {
			events = append(events, event.EventType)
			return nil
		}).Times(2)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, []domain.EventType{domain.EventTypeOrderPaid, domain.EventTypeBatchSoldOut}, events)
}

func TestVerifyPayment_FullBatchStaysPendingWithoutEvents(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(time.Minute)
	now := createdAt.Add(2 * time.Minute)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testTxID, testOrderID, testPriceSats, txTime).
		Return(true, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats, nil)

	// The batch filled up before this payment landed. No events fire and
	// the order stays pending for an administrative decision.
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().CreditOrderPaid(gomock.Any(), testOrderID, now).Return(&store.CreditResult{
		Order:             order,
		Batch:             &schema.Batch{ID: 1, MaxWallets: 10, MintedWallets: 10, IsSoldOut: true},
		SoldOut:           true,
		CapacityExhausted: true,
	}, nil)

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, domain.OrderStatusPending, result.Status)
	assert.Equal(t, testPriceSats, result.CreditedSats)
}

func TestVerifyPayment_PublishFailureDoesNotFailCredit(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tearDownTestVerifier(tm)

	createdAt := time.Now()
	order := pendingOrder(createdAt)
	txTime := createdAt.Add(time.Minute)
	now := createdAt.Add(2 * time.Minute)

	tm.store.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)
	tm.source.EXPECT().FetchTransactions(gomock.Any(), testPayAddr).Return([]domain.Transaction{
		{
			TxID:      testTxID,
			Timestamp: txTime,
			Outputs:   []domain.TxOutput{{Address: testPayAddr, ValueSats: testPriceSats}},
		},
	}, nil)
	tm.store.EXPECT().ClaimTransaction(gomock.Any(), testTxID, testOrderID, testPriceSats, txTime).
		Return(true, nil)
	tm.store.EXPECT().SumCreditedForOrder(gomock.Any(), testOrderID).Return(testPriceSats, nil)

	paidOrder := *order
	paidOrder.Status = domain.OrderStatusPaid
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().CreditOrderPaid(gomock.Any(), testOrderID, now).Return(&store.CreditResult{
		Order:     &paidOrder,
		NewlyPaid: true,
	}, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	result, err := tm.verifier.VerifyPayment(context.Background(), testOrderID)
	require.NoError(t, err)
	assert.True(t, result.Verified)
}
