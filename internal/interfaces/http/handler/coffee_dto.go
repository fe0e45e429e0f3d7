package handler

import (
	"time"

	appcollection "github.com/recoffee/backend/internal/application/collection"
	"github.com/recoffee/backend/internal/domain/collection"
)

// CollectDayRequest is one weekly pickup slot. time must be present but
// may be any string, including empty.
type CollectDayRequest struct {
	Weekday *int    `json:"weekday" binding:"required"`
	Time    *string `json:"time" binding:"required"`
}

// CreateRulesRequest appends pickup slots to a cafe. amount and position
// are required for compatibility but not stored.
type CreateRulesRequest struct {
	CollectDays []CollectDayRequest `json:"collect_days" binding:"required,dive"`
	Amount      *int                `json:"amount" binding:"required"`
	Position    *string             `json:"position" binding:"required"`
}

// toAppRequest converts to the application DTO
func (r CreateRulesRequest) toAppRequest() appcollection.CreateRulesRequest {
	slots := make([]collection.Slot, 0, len(r.CollectDays))
	for _, d := range r.CollectDays {
		slots = append(slots, collection.Slot{Weekday: *d.Weekday, Time: *d.Time})
	}
	return appcollection.CreateRulesRequest{
		Slots:    slots,
		Amount:   *r.Amount,
		Position: *r.Position,
	}
}

// CreateTransactionRequest records a collection. time must carry a zone
// offset (RFC 3339). state is accepted and ignored; new rows start Waiting.
type CreateTransactionRequest struct {
	HistoryID  *int       `json:"history_id" binding:"required"`
	ClientName *string    `json:"client_name" binding:"required"`
	Time       *time.Time `json:"time" binding:"required"`
	State      *string    `json:"state" binding:"required"`
	Amount     *int       `json:"amount" binding:"required"`
}

// toAppRequest converts to the application DTO
func (r CreateTransactionRequest) toAppRequest() appcollection.CreateTransactionRequest {
	return appcollection.CreateTransactionRequest{
		HistoryID:  *r.HistoryID,
		ClientName: *r.ClientName,
		Time:       *r.Time,
		Amount:     *r.Amount,
	}
}

// CancelTransactionRequest identifies the transaction to delete
type CancelTransactionRequest struct {
	HistoryID *int `json:"history_id" binding:"required"`
}
