package persistence

import (
	"context"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTransactionRepository implements collection.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByCafe returns all transactions of the cafe ordered by id
func (r *GormTransactionRepository) FindByCafe(ctx context.Context, cafeID int) ([]*collection.CollectTransaction, error) {
	var rows []models.CollectTransactionModel
	if err := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	txs := make([]*collection.CollectTransaction, len(rows))
	for i := range rows {
		txs[i] = rows[i].ToDomain()
	}
	return txs, nil
}

// Create inserts a transaction with its client supplied id
func (r *GormTransactionRepository) Create(ctx context.Context, t *collection.CollectTransaction) error {
	return r.db.WithContext(ctx).Create(models.CollectTransactionModelFromDomain(t)).Error
}

// DeleteByCafeAndID deletes every row matching (cafeID, id) one at a time
func (r *GormTransactionRepository) DeleteByCafeAndID(ctx context.Context, cafeID, id int) (int, error) {
	deleted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.CollectTransactionModel
		if err := tx.Where("cafe_id = ? AND id = ?", cafeID, id).Find(&rows).Error; err != nil {
			return err
		}
		for i := range rows {
			res := tx.Where("cafe_id = ? AND id = ?", rows[i].CafeID, rows[i].ID).
				Delete(&models.CollectTransactionModel{})
			if res.Error != nil {
				return res.Error
			}
			deleted += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// SumCompletedAmount returns the total amount of COMPLETED transactions
func (r *GormTransactionRepository) SumCompletedAmount(ctx context.Context, cafeID int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.CollectTransactionModel{}).
		Where("cafe_id = ? AND status = ?", cafeID, collection.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Ensure GormTransactionRepository implements collection.TransactionRepository
var _ collection.TransactionRepository = (*GormTransactionRepository)(nil)
