package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description     string          `gorm:"size:255;not null" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Deleted         bool            `gorm:"not null;default:false" json:"deleted"` // 软删标记，行不物理删除
	UpsellProductID *uint           `json:"upsellProductId"`                       // 加购推荐，空=无
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       *time.Time      `gorm:"autoUpdateTime:false" json:"updatedAt"` // 仅字段更新时写入
}

func (Product) TableName() string { return "products" }

// ProductPatch 单字段更新的落库形态（列名 -> 值），由 service 层构造
type ProductPatch map[string]any

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	ListActive(ctx context.Context) ([]Product, error)
	ListByUpsellTarget(ctx context.Context, id uint) ([]Product, error)
	UpdateByName(ctx context.Context, name string, patch ProductPatch) error
	SetUpsell(ctx context.Context, id uint, upsellID *uint) error
	SoftDelete(ctx context.Context, name string) error
}
