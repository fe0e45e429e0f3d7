package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/domain/identity"
	"github.com/recoffee/backend/internal/domain/shared"
	"github.com/recoffee/backend/internal/interfaces/http/middleware"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, page shared.OffsetPage) ([]*identity.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

// MockTokenExchanger is a mock implementation of identity.TokenExchanger
type MockTokenExchanger struct {
	mock.Mock
}

func (m *MockTokenExchanger) ExchangeCode(ctx context.Context, code string) (*identity.OAuthToken, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.OAuthToken), args.Error(1)
}

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

// MockPinger is a mock implementation of DatabasePinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// newTestEngine returns an engine with the request id middleware installed
func newTestEngine() *gin.Engine {
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	return engine
}

// doRequest performs a request against engine; body is JSON-encoded unless
// it is already a string.
func doRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
