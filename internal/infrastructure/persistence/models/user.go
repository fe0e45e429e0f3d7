package models

import (
	"time"

	"github.com/recoffee/backend/internal/domain/identity"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	ID          int       `gorm:"column:id;primaryKey"`
	Token       string    `gorm:"column:token;type:varchar(255)"`
	Name        string    `gorm:"column:name;type:varchar(100)"`
	Address     string    `gorm:"column:address;type:varchar(255)"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(50)"`
	Role        string    `gorm:"column:role;type:varchar(50)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		ID:          m.ID,
		Token:       m.Token,
		Name:        m.Name,
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
