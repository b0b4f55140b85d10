package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"munch-pos/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	// 列表约定返回 []，空结果也不给 null
	ps := []domain.Product{}
	err := r.db.WithContext(ctx).Order("id").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	ps := []domain.Product{}
	err := r.db.WithContext(ctx).Where("deleted = ?", false).Order("id").Find(&ps).Error
	return ps, err
}

// ListByUpsellTarget 反向查询：谁把 id 设为自己的加购推荐
func (r *ProductRepo) ListByUpsellTarget(ctx context.Context, id uint) ([]domain.Product, error) {
	ps := []domain.Product{}
	err := r.db.WithContext(ctx).Where("upsell_product_id = ?", id).Order("id").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) UpdateByName(ctx context.Context, name string, patch domain.ProductPatch) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("name = ?", name).
		Updates(map[string]any(patch)).Error
}

func (r *ProductRepo) SetUpsell(ctx context.Context, id uint, upsellID *uint) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).
		Update("upsell_product_id", upsellID).Error
}

func (r *ProductRepo) SoftDelete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("name = ?", name).
		Update("deleted", true).Error
}
