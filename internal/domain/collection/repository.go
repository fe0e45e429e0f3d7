package collection

import "context"

// RuleRepository persists collection rules
type RuleRepository interface {
	// FindByCafe returns every rule of the cafe; an empty slice is not an error
	FindByCafe(ctx context.Context, cafeID int) ([]*CollectRule, error)

	// CreateBatch inserts all rules atomically and fills their IDs
	CreateBatch(ctx context.Context, rules []*CollectRule) error
}

// TransactionRepository persists collection transactions
type TransactionRepository interface {
	// FindByCafe returns every transaction of the cafe regardless of status
	FindByCafe(ctx context.Context, cafeID int) ([]*CollectTransaction, error)

	// Create inserts tx; a duplicate ID surfaces as a storage error
	Create(ctx context.Context, tx *CollectTransaction) error

	// DeleteByCafeAndID removes the rows matching both keys, each one
	// individually inside a single storage transaction, and returns how many
	// were removed. Zero matches is not an error.
	DeleteByCafeAndID(ctx context.Context, cafeID, id int) (int, error)

	// SumCompletedAmount totals Amount over COMPLETED rows, 0 when none
	SumCompletedAmount(ctx context.Context, cafeID int) (int64, error)
}
