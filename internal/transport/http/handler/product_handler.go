package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"munch-pos/internal/apperr"
	"munch-pos/internal/service"
	resp "munch-pos/internal/transport/http/response"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListAll GET /products/all-products
func (h *ProductHandler) ListAll(c *gin.Context) {
	ps, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, ps)
}

// ListActive GET /products/all-active-products
func (h *ProductHandler) ListActive(c *gin.Context) {
	ps, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, ps)
}

// Add POST /products/add-product
func (h *ProductHandler) Add(c *gin.Context) {
	// 指针字段区分缺失与零值
	var in struct {
		Name        *string          `json:"name" binding:"required"`
		Price       *decimal.Decimal `json:"price" binding:"required"`
		Description *string          `json:"description" binding:"required"`
		Quantity    *int             `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: name, price, description, quantity"))
		return
	}
	if err := h.catalog.Add(c.Request.Context(), *in.Name, *in.Price, *in.Description, *in.Quantity); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully added new product")
}

// Delete POST /products/delete-product（软删）
func (h *ProductHandler) Delete(c *gin.Context) {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidName, "Product name must not be blank"))
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), in.Name); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully deleted product")
}

// Update POST /products/update-product
// 线上契约仍是数字下标 {name, index, value}，在这里翻译成字段变体
func (h *ProductHandler) Update(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Index *int   `json:"index" binding:"required"`
		Value any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: name, index, value"))
		return
	}
	upd, updErr := fieldUpdateFor(*in.Index, in.Value)
	if updErr != nil {
		// 商品不存在优先于下标/类型错误
		if _, err := h.catalog.Get(c.Request.Context(), in.Name); err != nil {
			resp.Fail(c, err)
			return
		}
		resp.Fail(c, updErr)
		return
	}
	if err := h.catalog.UpdateField(c.Request.Context(), in.Name, upd); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully updated product")
}

// 下标含义沿用原契约：0=name 1=description 2=price 3=quantity
func fieldUpdateFor(index int, value any) (service.FieldUpdate, error) {
	switch index {
	case 0, 1:
		s, ok := value.(string)
		if !ok {
			return nil, apperr.Validation(apperr.CodeTypeMismatch,
				"Invalid data type for value, expected string")
		}
		if index == 0 {
			return service.NameUpdate{Value: s}, nil
		}
		return service.DescriptionUpdate{Value: s}, nil
	case 2:
		f, ok := value.(float64) // JSON 数字统一解成 float64
		if !ok {
			return nil, apperr.Validation(apperr.CodeTypeMismatch,
				"Invalid data type for value, expected number")
		}
		return service.PriceUpdate{Value: decimal.NewFromFloat(f)}, nil
	case 3:
		f, ok := value.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, apperr.Validation(apperr.CodeTypeMismatch,
				"Invalid data type for value, expected integer")
		}
		return service.QuantityUpdate{Value: int(f)}, nil
	default:
		return nil, apperr.Validation(apperr.CodeInvalidFieldIndex,
			"Field index must be between 0 and 3")
	}
}

// LinkUpsell POST /products/link-upsell-product
func (h *ProductHandler) LinkUpsell(c *gin.Context) {
	var in struct {
		ProductID       *uint `json:"product_id" binding:"required"`
		UpsellProductID *uint `json:"upsell_product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: product_id, upsell_product_id"))
		return
	}
	if err := h.catalog.LinkUpsell(c.Request.Context(), *in.ProductID, *in.UpsellProductID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully linked upsell product")
}

// UnlinkUpsell POST /products/unlink-upsell-product
func (h *ProductHandler) UnlinkUpsell(c *gin.Context) {
	var in struct {
		ProductID *uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields, "Required fields: product_id"))
		return
	}
	if err := h.catalog.UnlinkUpsell(c.Request.Context(), *in.ProductID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "Successfully unlinked upsell product")
}

// UpsellTargets POST /products/product-upsell-products（反查）
func (h *ProductHandler) UpsellTargets(c *gin.Context) {
	var in struct {
		ProductID *uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields, "Required fields: product_id"))
		return
	}
	ps, err := h.catalog.UpsellTargets(c.Request.Context(), *in.ProductID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, ps)
}
