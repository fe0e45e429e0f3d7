package persistence

import (
	"context"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRuleRepository implements collection.RuleRepository using GORM
type GormRuleRepository struct {
	db *gorm.DB
}

// NewGormRuleRepository creates a new GormRuleRepository
func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{db: db}
}

// FindByCafe returns the cafe's rules in insertion order
func (r *GormRuleRepository) FindByCafe(ctx context.Context, cafeID int) ([]*collection.CollectRule, error) {
	var rows []models.CollectRuleModel
	if err := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	rules := make([]*collection.CollectRule, len(rows))
	for i := range rows {
		rules[i] = rows[i].ToDomain()
	}
	return rules, nil
}

// CreateBatch inserts rules in one transaction and copies generated IDs back
func (r *GormRuleRepository) CreateBatch(ctx context.Context, rules []*collection.CollectRule) error {
	if len(rules) == 0 {
		return nil
	}

	rows := make([]*models.CollectRuleModel, len(rules))
	for i, rule := range rules {
		rows[i] = models.CollectRuleModelFromDomain(rule)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return err
	}

	for i := range rows {
		rules[i].ID = rows[i].ID
	}
	return nil
}

// Ensure GormRuleRepository implements collection.RuleRepository
var _ collection.RuleRepository = (*GormRuleRepository)(nil)
