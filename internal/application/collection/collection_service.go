package collection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/infrastructure/logger"
	"github.com/recoffee/backend/internal/infrastructure/telemetry"
)

// CollectionService handles cafe collection operations
type CollectionService struct {
	ruleRepo collection.RuleRepository
	txRepo   collection.TransactionRepository
	metrics  *telemetry.CollectionMetrics
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(ruleRepo collection.RuleRepository, txRepo collection.TransactionRepository) *CollectionService {
	return &CollectionService{
		ruleRepo: ruleRepo,
		txRepo:   txRepo,
	}
}

// SetCollectionMetrics sets the metrics collector
func (s *CollectionService) SetCollectionMetrics(m *telemetry.CollectionMetrics) {
	s.metrics = m
}

// ListRules returns every rule of the cafe
func (s *CollectionService) ListRules(ctx context.Context, cafeID int) ([]RuleDTO, error) {
	rules, err := s.ruleRepo.FindByCafe(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return ToRuleDTOs(rules), nil
}

// CreateRules appends one rule per slot. Existing rules are kept.
func (s *CollectionService) CreateRules(ctx context.Context, cafeID int, req CreateRulesRequest) ([]RuleDTO, error) {
	rules := collection.NewRules(cafeID, req.Slots)
	if len(rules) == 0 {
		return []RuleDTO{}, nil
	}

	if err := s.ruleRepo.CreateBatch(ctx, rules); err != nil {
		return nil, fmt.Errorf("create rules: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordRulesCreated(ctx, len(rules))
	}
	logger.L(ctx).Info("Collection rules created",
		zap.Int("cafe_id", cafeID),
		zap.Int("count", len(rules)),
	)
	return ToRuleDTOs(rules), nil
}

// ListTransactions returns every transaction of the cafe regardless of status
func (s *CollectionService) ListTransactions(ctx context.Context, cafeID int) ([]TransactionDTO, error) {
	txs, err := s.txRepo.FindByCafe(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return ToTransactionDTOs(txs), nil
}

// CreateTransaction records a new transaction in the Waiting state
func (s *CollectionService) CreateTransaction(ctx context.Context, cafeID int, req CreateTransactionRequest) (*TransactionDTO, error) {
	tx := collection.NewTransaction(cafeID, req.HistoryID, req.ClientName, req.Time, req.Amount)
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction %d: %w", req.HistoryID, err)
	}

	if s.metrics != nil {
		s.metrics.RecordTransactionCreated(ctx)
	}
	logger.L(ctx).Info("Collection transaction created",
		zap.Int("cafe_id", cafeID),
		zap.Int("history_id", tx.ID),
		zap.Int("amount", tx.Amount),
	)

	dto := ToTransactionDTO(tx)
	return &dto, nil
}

// CancelTransaction deletes the cafe's transaction with historyID. Cancelling
// a transaction that does not exist is a no-op.
func (s *CollectionService) CancelTransaction(ctx context.Context, cafeID, historyID int) error {
	n, err := s.txRepo.DeleteByCafeAndID(ctx, cafeID, historyID)
	if err != nil {
		return fmt.Errorf("cancel transaction %d: %w", historyID, err)
	}

	if n > 0 && s.metrics != nil {
		s.metrics.RecordTransactionsCancelled(ctx, n)
	}
	logger.L(ctx).Info("Collection transaction cancelled",
		zap.Int("cafe_id", cafeID),
		zap.Int("history_id", historyID),
		zap.Int("deleted", n),
	)
	return nil
}

// CarbonTotal sums the amounts of the cafe's COMPLETED transactions
func (s *CollectionService) CarbonTotal(ctx context.Context, cafeID int) (*CarbonDTO, error) {
	total, err := s.txRepo.SumCompletedAmount(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("carbon total: %w", err)
	}
	return &CarbonDTO{Carbon: total}, nil
}
