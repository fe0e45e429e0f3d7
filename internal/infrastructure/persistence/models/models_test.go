package models

import (
	"testing"
	"time"

	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "collect_rule", CollectRuleModel{}.TableName())
	assert.Equal(t, "collect_transaction", CollectTransactionModel{}.TableName())
	assert.Len(t, All(), 3)
}

func TestUserModel_Mapping(t *testing.T) {
	now := time.Now().UTC()
	m := &UserModel{ID: 5, Token: "tok", Name: "kim", Address: "Seoul", PhoneNumber: "010", Role: "cafe", CreatedAt: now, UpdatedAt: now}

	assert.Equal(t, &identity.User{ID: 5, Token: "tok", Name: "kim", Address: "Seoul", PhoneNumber: "010", Role: "cafe", CreatedAt: now, UpdatedAt: now}, m.ToDomain())
}

func TestCollectTransactionModel_Mapping(t *testing.T) {
	tx := collection.NewTransaction(1, 42, "lee", time.Now(), 100)
	m := CollectTransactionModelFromDomain(tx)

	assert.Equal(t, collection.StatusWaiting, m.Status)
	assert.Equal(t, tx, m.ToDomain())
}

func TestCollectRuleModel_Mapping(t *testing.T) {
	r := &collection.CollectRule{ID: 3, CafeID: 1, Weekday: 0, Time: "09:00"}
	assert.Equal(t, r, CollectRuleModelFromDomain(r).ToDomain())
}
