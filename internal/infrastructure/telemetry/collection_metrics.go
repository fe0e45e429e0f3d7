package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Token exchange outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// AttrOutcome labels the result of a token exchange
var AttrOutcome = attribute.Key("outcome")

// CollectionMetrics counts collection activity and token exchanges.
type CollectionMetrics struct {
	rulesCreated          *Counter
	transactionsCreated   *Counter
	transactionsCancelled *Counter
	tokenExchanges        *Counter
}

// NewCollectionMetrics creates the collection counters on meter.
func NewCollectionMetrics(meter metric.Meter) (*CollectionMetrics, error) {
	rules, err := NewCounter(meter, "coffee_rules_created_total", "Collection rules created", "{rule}")
	if err != nil {
		return nil, err
	}
	created, err := NewCounter(meter, "coffee_transactions_created_total", "Collection transactions created", "{transaction}")
	if err != nil {
		return nil, err
	}
	cancelled, err := NewCounter(meter, "coffee_transactions_cancelled_total", "Collection transactions cancelled", "{transaction}")
	if err != nil {
		return nil, err
	}
	exchanges, err := NewCounter(meter, "oauth_token_exchanges_total", "Authorization code exchanges by outcome", "{exchange}")
	if err != nil {
		return nil, err
	}

	return &CollectionMetrics{
		rulesCreated:          rules,
		transactionsCreated:   created,
		transactionsCancelled: cancelled,
		tokenExchanges:        exchanges,
	}, nil
}

// RecordRulesCreated adds n created rules
func (m *CollectionMetrics) RecordRulesCreated(ctx context.Context, n int) {
	m.rulesCreated.Add(ctx, int64(n))
}

// RecordTransactionCreated counts one created transaction
func (m *CollectionMetrics) RecordTransactionCreated(ctx context.Context) {
	m.transactionsCreated.Inc(ctx)
}

// RecordTransactionsCancelled adds n deleted transactions
func (m *CollectionMetrics) RecordTransactionsCancelled(ctx context.Context, n int) {
	m.transactionsCancelled.Add(ctx, int64(n))
}

// RecordTokenExchange counts one exchange with the given outcome
func (m *CollectionMetrics) RecordTokenExchange(ctx context.Context, outcome string) {
	m.tokenExchanges.Inc(ctx, AttrOutcome.String(outcome))
}
