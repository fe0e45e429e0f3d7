package models

import (
	"time"

	"github.com/recoffee/backend/internal/domain/collection"
)

// CollectRuleModel is the persistence model for collection.CollectRule
type CollectRuleModel struct {
	ID      int    `gorm:"column:id;primaryKey;autoIncrement"`
	CafeID  int    `gorm:"column:cafe_id;not null;index"`
	Weekday int    `gorm:"column:weekday;not null"`
	Time    string `gorm:"column:time;type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (CollectRuleModel) TableName() string {
	return "collect_rule"
}

// ToDomain converts the persistence model to a domain CollectRule
func (m *CollectRuleModel) ToDomain() *collection.CollectRule {
	return &collection.CollectRule{
		ID:      m.ID,
		CafeID:  m.CafeID,
		Weekday: m.Weekday,
		Time:    m.Time,
	}
}

// CollectRuleModelFromDomain creates a persistence model from a domain CollectRule
func CollectRuleModelFromDomain(r *collection.CollectRule) *CollectRuleModel {
	return &CollectRuleModel{
		ID:      r.ID,
		CafeID:  r.CafeID,
		Weekday: r.Weekday,
		Time:    r.Time,
	}
}

// CollectTransactionModel is the persistence model for
// collection.CollectTransaction. The primary key is supplied by the client.
type CollectTransactionModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement:false"`
	CafeID     int       `gorm:"column:cafe_id;not null;index;index:idx_collect_transaction_cafe_status,priority:1"`
	ClientName string    `gorm:"column:client_name;type:varchar(100)"`
	Time       time.Time `gorm:"column:time;not null"`
	Amount     int       `gorm:"column:amount;not null"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;index:idx_collect_transaction_cafe_status,priority:2"`
}

// TableName returns the table name for GORM
func (CollectTransactionModel) TableName() string {
	return "collect_transaction"
}

// ToDomain converts the persistence model to a domain CollectTransaction
func (m *CollectTransactionModel) ToDomain() *collection.CollectTransaction {
	return &collection.CollectTransaction{
		ID:         m.ID,
		CafeID:     m.CafeID,
		ClientName: m.ClientName,
		Time:       m.Time,
		Amount:     m.Amount,
		Status:     m.Status,
	}
}

// CollectTransactionModelFromDomain creates a persistence model from a domain CollectTransaction
func CollectTransactionModelFromDomain(t *collection.CollectTransaction) *CollectTransactionModel {
	return &CollectTransactionModel{
		ID:         t.ID,
		CafeID:     t.CafeID,
		ClientName: t.ClientName,
		Time:       t.Time,
		Amount:     t.Amount,
		Status:     t.Status,
	}
}

// All returns every model managed by the service, in creation order.
func All() []any {
	return []any{
		&UserModel{},
		&CollectRuleModel{},
		&CollectTransactionModel{},
	}
}
