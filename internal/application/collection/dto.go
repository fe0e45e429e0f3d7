// Package collection implements cafe collection rules, transaction history,
// cancellation and the carbon total.
package collection

import (
	"time"

	"github.com/recoffee/backend/internal/domain/collection"
)

// CreateRulesRequest carries the slots to append to a cafe's schedule.
// Amount and Position are accepted for compatibility and not stored.
type CreateRulesRequest struct {
	Slots    []collection.Slot
	Amount   int
	Position string
}

// CreateTransactionRequest carries a client-identified collection event
type CreateTransactionRequest struct {
	HistoryID  int
	ClientName string
	Time       time.Time
	Amount     int
}

// RuleDTO represents a collection rule
type RuleDTO struct {
	ID      int    `json:"id"`
	CafeID  int    `json:"cafe_id"`
	Weekday int    `json:"weekday"`
	Time    string `json:"time"`
}

// TransactionDTO represents a collection transaction
type TransactionDTO struct {
	ID         int       `json:"id"`
	CafeID     int       `json:"cafe_id"`
	ClientName string    `json:"client_name"`
	Time       time.Time `json:"time"`
	Amount     int       `json:"amount"`
	Status     string    `json:"status"`
}

// CarbonDTO is the carbon total of a cafe
type CarbonDTO struct {
	Carbon int64 `json:"carbon"`
}

// ToRuleDTO converts a domain rule
func ToRuleDTO(r *collection.CollectRule) RuleDTO {
	return RuleDTO{
		ID:      r.ID,
		CafeID:  r.CafeID,
		Weekday: r.Weekday,
		Time:    r.Time,
	}
}

// ToRuleDTOs converts rules; nil input yields an empty slice
func ToRuleDTOs(rules []*collection.CollectRule) []RuleDTO {
	dtos := make([]RuleDTO, 0, len(rules))
	for _, r := range rules {
		dtos = append(dtos, ToRuleDTO(r))
	}
	return dtos
}

// ToTransactionDTO converts a domain transaction
func ToTransactionDTO(t *collection.CollectTransaction) TransactionDTO {
	return TransactionDTO{
		ID:         t.ID,
		CafeID:     t.CafeID,
		ClientName: t.ClientName,
		Time:       t.Time,
		Amount:     t.Amount,
		Status:     t.Status,
	}
}

// ToTransactionDTOs converts transactions; nil input yields an empty slice
func ToTransactionDTOs(txs []*collection.CollectTransaction) []TransactionDTO {
	dtos := make([]TransactionDTO, 0, len(txs))
	for _, t := range txs {
		dtos = append(dtos, ToTransactionDTO(t))
	}
	return dtos
}
