package collection

import "time"

// Transaction statuses. Status is an open string column; only these two
// values are produced or interpreted by the service.
const (
	StatusWaiting   = "Waiting"
	StatusCompleted = "COMPLETED"
)

// CollectTransaction is a single collection event. Its ID is chosen by
// the client.
type CollectTransaction struct {
	ID         int
	CafeID     int
	ClientName string
	Time       time.Time
	Amount     int
	Status     string
}

// NewTransaction builds a transaction in the Waiting state.
func NewTransaction(cafeID, id int, clientName string, at time.Time, amount int) *CollectTransaction {
	return &CollectTransaction{
		ID:         id,
		CafeID:     cafeID,
		ClientName: clientName,
		Time:       at,
		Amount:     amount,
		Status:     StatusWaiting,
	}
}
