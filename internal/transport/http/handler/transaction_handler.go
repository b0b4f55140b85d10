package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"munch-pos/internal/apperr"
	"munch-pos/internal/service"
	resp "munch-pos/internal/transport/http/response"
)

type TransactionHandler struct {
	txs *service.TransactionService
}

func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// Add POST /transactions/add-transaction
func (h *TransactionHandler) Add(c *gin.Context) {
	var in struct {
		ProductID *uint            `json:"product_id" binding:"required"`
		Quantity  *int             `json:"quantity" binding:"required"`
		Total     *decimal.Decimal `json:"total" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Only numeric parameters allowed"))
		return
	}
	if err := h.txs.Record(c.Request.Context(), *in.ProductID, *in.Quantity, *in.Total); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully added transaction")
}

// Get POST /transactions/get-transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	var in struct {
		TransactionID *uint `json:"transaction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: transaction_id"))
		return
	}
	view, err := h.txs.GetByID(c.Request.Context(), *in.TransactionID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}
