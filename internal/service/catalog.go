package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"munch-pos/internal/apperr"
	"munch-pos/internal/core/cache"
	"munch-pos/internal/domain"
	"munch-pos/internal/repo"
	"munch-pos/pkg/utils"
)

const activeProductsKey = "products:active"

// FieldUpdate 单字段更新的封闭联合：每个变体带自己的类型，
// 线侧的数字下标在 handler 边界翻译成变体
type FieldUpdate interface{ isFieldUpdate() }

type NameUpdate struct{ Value string }
type DescriptionUpdate struct{ Value string }
type PriceUpdate struct{ Value decimal.Decimal }
type QuantityUpdate struct{ Value int }

func (NameUpdate) isFieldUpdate()        {}
func (DescriptionUpdate) isFieldUpdate() {}
func (PriceUpdate) isFieldUpdate()       {}
func (QuantityUpdate) isFieldUpdate()    {}

// CatalogService 商品目录；cache 可为 nil（测试或未接 redis 时直读库）
type CatalogService struct {
	products domain.ProductRepository
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewCatalogService(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{products: products, cache: c, cacheTTL: ttl}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	ps, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal("list products", err)
	}
	return ps, nil
}

func (s *CatalogService) ListActive(ctx context.Context) ([]domain.Product, error) {
	if s.cache == nil {
		ps, err := s.products.ListActive(ctx)
		if err != nil {
			return nil, apperr.Internal("list active products", err)
		}
		return ps, nil
	}
	ps, err := cache.GetOrLoadJSON(s.cache, ctx, activeProductsKey, s.cacheTTL,
		func(ctx context.Context) ([]domain.Product, error) {
			return s.products.ListActive(ctx)
		})
	if err != nil {
		return nil, apperr.Internal("list active products", err)
	}
	return ps, nil
}

func (s *CatalogService) Add(ctx context.Context, name string, price decimal.Decimal, description string, quantity int) error {
	if utils.IsBlank(name) || utils.IsBlank(description) {
		return apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: name, price, description, quantity")
	}

	existing, err := s.products.FindByName(ctx, name)
	if err != nil {
		return apperr.Internal("find product by name", err)
	}
	if existing != nil {
		// 已删的同名商品同样占名
		return apperr.Conflict(apperr.CodeProductExists,
			fmt.Sprintf("Product with name %s already exists", name))
	}

	p := &domain.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Deleted:     false,
	}
	if err := s.products.Create(ctx, p); err != nil {
		if repo.IsDupKey(err) {
			return apperr.Conflict(apperr.CodeProductExists,
				fmt.Sprintf("Product with name %s already exists", name))
		}
		return apperr.Internal("create product", err)
	}
	s.invalidate(ctx)
	return nil
}

// Get 按名取件；不存在返回 NotFound
func (s *CatalogService) Get(ctx context.Context, name string) (*domain.Product, error) {
	p, err := s.products.FindByName(ctx, name)
	if err != nil {
		return nil, apperr.Internal("find product by name", err)
	}
	if p == nil {
		return nil, apperr.NotFound(apperr.CodeProductNotFound,
			fmt.Sprintf("Product with name %s not found", name))
	}
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, name string) error {
	if utils.IsBlank(name) {
		return apperr.Validation(apperr.CodeInvalidName, "Product name must not be blank")
	}
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}
	if err := s.products.SoftDelete(ctx, name); err != nil {
		return apperr.Internal("delete product", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateField 只动一个字段和 updated_at，其余保持原样
func (s *CatalogService) UpdateField(ctx context.Context, name string, upd FieldUpdate) error {
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}

	patch := domain.ProductPatch{}
	switch u := upd.(type) {
	case NameUpdate:
		if utils.IsBlank(u.Value) {
			return apperr.Validation(apperr.CodeBlankValue, "Value must not be blank")
		}
		patch["name"] = u.Value
	case DescriptionUpdate:
		if utils.IsBlank(u.Value) {
			return apperr.Validation(apperr.CodeBlankValue, "Value must not be blank")
		}
		patch["description"] = u.Value
	case PriceUpdate:
		patch["price"] = u.Value
	case QuantityUpdate:
		patch["quantity"] = u.Value
	default:
		return apperr.Validation(apperr.CodeInvalidFieldIndex, "Unknown field update")
	}
	now := time.Now()
	patch["updated_at"] = &now

	if err := s.products.UpdateByName(ctx, name, patch); err != nil {
		if repo.IsDupKey(err) {
			return apperr.Conflict(apperr.CodeProductExists, "Product name already taken")
		}
		return apperr.Internal("update product", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) LinkUpsell(ctx context.Context, productID, upsellProductID uint) error {
	if productID == upsellProductID {
		return apperr.Conflict(apperr.CodeSelfReference, "Product cannot upsell itself")
	}
	for _, id := range []uint{productID, upsellProductID} {
		p, err := s.products.FindByID(ctx, id)
		if err != nil {
			return apperr.Internal("find product by id", err)
		}
		if p == nil {
			return apperr.NotFound(apperr.CodeProductNotFound,
				fmt.Sprintf("Product with ID '%d' not found", id))
		}
	}
	if err := s.products.SetUpsell(ctx, productID, &upsellProductID); err != nil {
		return apperr.Internal("link upsell product", err)
	}
	s.invalidate(ctx)
	return nil
}

// UnlinkUpsell 已为空时也算成功（幂等）
func (s *CatalogService) UnlinkUpsell(ctx context.Context, productID uint) error {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return apperr.Internal("find product by id", err)
	}
	if p == nil {
		return apperr.NotFound(apperr.CodeProductNotFound,
			fmt.Sprintf("Product with ID '%d' not found", productID))
	}
	if err := s.products.SetUpsell(ctx, productID, nil); err != nil {
		return apperr.Internal("unlink upsell product", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpsellTargets 反查：所有把 productID 设为加购推荐的商品
func (s *CatalogService) UpsellTargets(ctx context.Context, productID uint) ([]domain.Product, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("find product by id", err)
	}
	if p == nil {
		return nil, apperr.NotFound(apperr.CodeProductNotFound,
			fmt.Sprintf("Product with ID '%d' not found", productID))
	}
	ps, err := s.products.ListByUpsellTarget(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("list upsell products", err)
	}
	return ps, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, activeProductsKey)
	}
}
