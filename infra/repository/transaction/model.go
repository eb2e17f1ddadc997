package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the persisted payment transaction row.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID       `gorm:"type:uuid;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	Provider         string          `gorm:"type:varchar(64);not null"`
	Status           string          `gorm:"type:varchar(16);not null;default:'new'"`
	PaymentLink      string          `gorm:"type:text"`
	PendingReference string          `gorm:"type:varchar(128);column:pending_reference;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
