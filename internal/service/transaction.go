package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"munch-pos/internal/apperr"
	"munch-pos/internal/domain"
)

// TransactionView 读取时拼装，upsellProducts 不落库
type TransactionView struct {
	ID             uint             `json:"id"`
	ProductID      uint             `json:"productId"`
	Quantity       int              `json:"quantity"`
	Total          decimal.Decimal  `json:"total"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpsellProducts []domain.Product `json:"upsellProducts"`
}

type TransactionService struct {
	txs     domain.TransactionRepository
	catalog *CatalogService
}

func NewTransactionService(txs domain.TransactionRepository, catalog *CatalogService) *TransactionService {
	return &TransactionService{txs: txs, catalog: catalog}
}

// Record 不扣减商品库存，quantity 仅作记录
func (s *TransactionService) Record(ctx context.Context, productID uint, quantity int, total decimal.Decimal) error {
	p, err := s.catalog.products.FindByID(ctx, productID)
	if err != nil {
		return apperr.Internal("find product by id", err)
	}
	if p == nil || p.Deleted {
		// 已软删的商品不可再售
		return apperr.NotFound(apperr.CodeProductNotFound,
			fmt.Sprintf("Product with ID '%d' not found", productID))
	}
	t := &domain.Transaction{ProductID: productID, Quantity: quantity, Total: total}
	if err := s.txs.Create(ctx, t); err != nil {
		return apperr.Internal("create transaction", err)
	}
	return nil
}

func (s *TransactionService) GetByID(ctx context.Context, id uint) (*TransactionView, error) {
	t, err := s.txs.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find transaction by id", err)
	}
	if t == nil {
		return nil, apperr.NotFound(apperr.CodeTxNotFound,
			fmt.Sprintf("Transaction with ID '%d' not found", id))
	}
	upsells, err := s.catalog.UpsellTargets(ctx, t.ProductID)
	if err != nil {
		return nil, err
	}
	if upsells == nil {
		upsells = []domain.Product{}
	}
	return &TransactionView{
		ID:             t.ID,
		ProductID:      t.ProductID,
		Quantity:       t.Quantity,
		Total:          t.Total,
		CreatedAt:      t.CreatedAt,
		UpsellProducts: upsells,
	}, nil
}
