package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 一经写入不再变更
type Transaction struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (Transaction) TableName() string { return "transactions" }

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	FindByID(ctx context.Context, id uint) (*Transaction, error)
}
