package collection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/infrastructure/logger"
	"github.com/recoffee/backend/internal/infrastructure/telemetry"
)

// MockRuleRepository is a mock implementation of collection.RuleRepository
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) FindByCafe(ctx context.Context, cafeID int) ([]*collection.CollectRule, error) {
	args := m.Called(ctx, cafeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.CollectRule), args.Error(1)
}

func (m *MockRuleRepository) CreateBatch(ctx context.Context, rules []*collection.CollectRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of collection.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByCafe(ctx context.Context, cafeID int) ([]*collection.CollectTransaction, error) {
	args := m.Called(ctx, cafeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.CollectTransaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *collection.CollectTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteByCafeAndID(ctx context.Context, cafeID, id int) (int, error) {
	args := m.Called(ctx, cafeID, id)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) SumCompletedAmount(ctx context.Context, cafeID int) (int64, error) {
	args := m.Called(ctx, cafeID)
	return args.Get(0).(int64), args.Error(1)
}

func newService() (*CollectionService, *MockRuleRepository, *MockTransactionRepository) {
	rules := new(MockRuleRepository)
	txs := new(MockTransactionRepository)
	return NewCollectionService(rules, txs), rules, txs
}

func TestCollectionService_ListRules(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rules", func(t *testing.T) {
		svc, rules, _ := newService()
		rules.On("FindByCafe", ctx, 7).Return([]*collection.CollectRule{
			{ID: 1, CafeID: 7, Weekday: 1, Time: "09:00"},
			{ID: 2, CafeID: 7, Weekday: 3, Time: "14:30"},
		}, nil)

		got, err := svc.ListRules(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []RuleDTO{
			{ID: 1, CafeID: 7, Weekday: 1, Time: "09:00"},
			{ID: 2, CafeID: 7, Weekday: 3, Time: "14:30"},
		}, got)
	})

	t.Run("no rules is an empty list", func(t *testing.T) {
		svc, rules, _ := newService()
		rules.On("FindByCafe", ctx, 8).Return(nil, nil)

		got, err := svc.ListRules(ctx, 8)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		svc, rules, _ := newService()
		dbErr := errors.New("connection reset")
		rules.On("FindByCafe", ctx, 9).Return(nil, dbErr)

		_, err := svc.ListRules(ctx, 9)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCollectionService_CreateRules(t *testing.T) {
	ctx := context.Background()

	t.Run("one rule per slot in order", func(t *testing.T) {
		svc, rules, _ := newService()
		rules.On("CreateBatch", ctx, mock.AnythingOfType("[]*collection.CollectRule")).
			Run(func(args mock.Arguments) {
				for i, r := range args.Get(1).([]*collection.CollectRule) {
					r.ID = 10 + i
				}
			}).
			Return(nil)

		got, err := svc.CreateRules(ctx, 7, CreateRulesRequest{
			Slots:    []collection.Slot{{Weekday: 0, Time: "08:00"}, {Weekday: 4, Time: "17:00"}},
			Amount:   30,
			Position: "front door",
		})
		require.NoError(t, err)
		assert.Equal(t, []RuleDTO{
			{ID: 10, CafeID: 7, Weekday: 0, Time: "08:00"},
			{ID: 11, CafeID: 7, Weekday: 4, Time: "17:00"},
		}, got)
		rules.AssertExpectations(t)
	})

	t.Run("no slots skips storage", func(t *testing.T) {
		svc, rules, _ := newService()
		got, err := svc.CreateRules(ctx, 7, CreateRulesRequest{})
		require.NoError(t, err)
		assert.Empty(t, got)
		rules.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("batch failure returns error", func(t *testing.T) {
		svc, rules, _ := newService()
		dbErr := errors.New("constraint violation")
		rules.On("CreateBatch", ctx, mock.Anything).Return(dbErr)

		_, err := svc.CreateRules(ctx, 7, CreateRulesRequest{Slots: []collection.Slot{{Weekday: 1, Time: "09:00"}}})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCollectionService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("KST", 9*60*60))

	t.Run("created as Waiting", func(t *testing.T) {
		svc, _, txs := newService()
		txs.On("Create", ctx, mock.MatchedBy(func(tx *collection.CollectTransaction) bool {
			return tx.ID == 42 && tx.CafeID == 7 && tx.Status == collection.StatusWaiting
		})).Return(nil)

		got, err := svc.CreateTransaction(ctx, 7, CreateTransactionRequest{
			HistoryID:  42,
			ClientName: "Green Farm",
			Time:       at,
			Amount:     5,
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got.ID)
		assert.Equal(t, "Green Farm", got.ClientName)
		assert.Equal(t, collection.StatusWaiting, got.Status)
		assert.True(t, at.Equal(got.Time))
		txs.AssertExpectations(t)
	})

	t.Run("duplicate id surfaces storage error", func(t *testing.T) {
		svc, _, txs := newService()
		dupErr := errors.New("duplicate key value violates unique constraint")
		txs.On("Create", ctx, mock.Anything).Return(dupErr)

		_, err := svc.CreateTransaction(ctx, 7, CreateTransactionRequest{HistoryID: 42})
		assert.ErrorIs(t, err, dupErr)
	})
}

func TestCollectionService_CancelTransaction(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithContext(context.Background(), zap.New(core))

	t.Run("deletes matching rows", func(t *testing.T) {
		svc, _, txs := newService()
		txs.On("DeleteByCafeAndID", ctx, 7, 42).Return(1, nil).Once()

		require.NoError(t, svc.CancelTransaction(ctx, 7, 42))
		txs.AssertExpectations(t)

		entries := logs.FilterMessage("Collection transaction cancelled").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].ContextMap()["deleted"])
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		svc, _, txs := newService()
		txs.On("DeleteByCafeAndID", ctx, 7, 999).Return(0, nil)

		assert.NoError(t, svc.CancelTransaction(ctx, 7, 999))
	})

	t.Run("storage error propagates", func(t *testing.T) {
		svc, _, txs := newService()
		dbErr := errors.New("deadlock detected")
		txs.On("DeleteByCafeAndID", ctx, 7, 1).Return(0, dbErr)

		assert.ErrorIs(t, svc.CancelTransaction(ctx, 7, 1), dbErr)
	})
}

func TestCollectionService_CarbonTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sum", func(t *testing.T) {
		svc, _, txs := newService()
		txs.On("SumCompletedAmount", ctx, 7).Return(int64(15), nil)

		got, err := svc.CarbonTotal(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(15), got.Carbon)
	})

	t.Run("zero when nothing completed", func(t *testing.T) {
		svc, _, txs := newService()
		txs.On("SumCompletedAmount", ctx, 8).Return(int64(0), nil)

		got, err := svc.CarbonTotal(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Carbon)
	})
}

func TestCollectionService_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewCollectionMetrics(provider.Meter("coffee"))
	require.NoError(t, err)

	svc, rules, txs := newService()
	svc.SetCollectionMetrics(m)
	rules.On("CreateBatch", ctx, mock.Anything).Return(nil)
	txs.On("Create", ctx, mock.Anything).Return(nil)
	txs.On("DeleteByCafeAndID", ctx, 7, 1).Return(1, nil)

	_, err = svc.CreateRules(ctx, 7, CreateRulesRequest{Slots: []collection.Slot{{Weekday: 1, Time: "09:00"}, {Weekday: 2, Time: "09:00"}}})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ctx, 7, CreateTransactionRequest{HistoryID: 1})
	require.NoError(t, err)
	require.NoError(t, svc.CancelTransaction(ctx, 7, 1))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if sum, ok := metric.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[metric.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), sums["coffee_rules_created_total"])
	assert.Equal(t, int64(1), sums["coffee_transactions_created_total"])
	assert.Equal(t, int64(1), sums["coffee_transactions_cancelled_total"])
}
