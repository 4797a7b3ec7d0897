package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SortName      = "name"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// ProductFilter collects the optional listing filters. SizesByType maps a
// variant size type to the caller's stored sizes of that type; a nil or empty
// map disables size matching.
type ProductFilter struct {
	Search       string
	CategorySlug string
	BrandSlug    string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStockOnly  bool
	SizesByType  map[string][]string
	Sort         string
}

type ProductRepositoryImpl interface {
	ListFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetSimilar(ctx context.Context, categoryID, excludeProductID string, limit int) ([]models.Product, error)
	GetByCategoryIDs(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]models.Product, error)
	GetBySizeMatch(ctx context.Context, sizesByType map[string][]string, excludeIDs []string, limit int) ([]models.Product, error)
	GetMostViewed(ctx context.Context, excludeIDs []string, limit int) ([]models.Product, error)
	PriceRange(ctx context.Context) (min, max decimal.Decimal, err error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

// sizeMatchCondition builds the per-size-type OR clause against the
// product_variants join. Sizes only match variants of their own size type.
func sizeMatchCondition(sizesByType map[string][]string) (string, []interface{}) {
	var conds []string
	var args []interface{}
	for _, sizeType := range []string{models.SizeTypeClothing, models.SizeTypeShoe, models.SizeTypeAccessory} {
		sizes := sizesByType[sizeType]
		if len(sizes) == 0 {
			continue
		}
		conds = append(conds, "(product_variants.size_type = ? AND product_variants.size IN ?)")
		args = append(args, sizeType, sizes)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

func (p *productRepository) filteredQuery(ctx context.Context, filter ProductFilter) *gorm.DB {
	q := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN brands ON brands.id = products.brand_id").
		Where("products.is_active = ?", true)

	if filter.Search != "" {
		keyword := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(brands.name) LIKE ?",
			keyword, keyword, keyword,
		)
	}

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.BrandSlug != "" {
		q = q.Where("brands.slug = ?", filter.BrandSlug)
	}

	if filter.MinPrice != nil {
		q = q.Where("products.current_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("products.current_price <= ?", *filter.MaxPrice)
	}

	sizeCond, sizeArgs := sizeMatchCondition(filter.SizesByType)

	if filter.InStockOnly || sizeCond != "" {
		q = q.Joins("JOIN product_variants ON product_variants.product_id = products.id")
		if filter.InStockOnly {
			q = q.Where("product_variants.stock_quantity > 0")
		}
		if sizeCond != "" {
			q = q.Where("product_variants.is_available = ?", true).
				Where(sizeCond, sizeArgs...)
		}
	}

	return q
}

// ListFiltered returns one page of matching active products plus the total
// distinct match count. Products matching through several variants are
// collapsed before pagination so no product repeats across pages.
func (p *productRepository) ListFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := p.filteredQuery(ctx, filter).
		Distinct("products.id").
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered products: %w", err)
	}

	q := p.filteredQuery(ctx, filter).Group("products.id")

	switch filter.Sort {
	case SortPriceLow:
		q = q.Order("products.current_price ASC")
	case SortPriceHigh:
		q = q.Order("products.current_price DESC")
	case SortNewest:
		q = q.Order("products.created_at DESC")
	case SortRating:
		q = q.Select("products.*, AVG(reviews.rating) AS avg_rating").
			Joins("LEFT JOIN reviews ON reviews.product_id = products.id AND reviews.is_approved = ? AND reviews.deleted_at IS NULL", true).
			Order("avg_rating DESC")
	}
	q = q.Order("products.name ASC")

	var products []models.Product
	err := q.
		Preload("Brand").
		Preload("Category").
		Preload("Images").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list filtered products: %w", err)
	}

	return products, total, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetFeatured lists active products that have at least one available variant.
func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN product_variants ON product_variants.product_id = products.id AND product_variants.is_available = ?", true).
		Where("products.is_active = ?", true).
		Group("products.id").
		Order("products.created_at DESC").
		Preload("Brand").
		Preload("Images").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetSimilar(ctx context.Context, categoryID, excludeProductID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ? AND id <> ?", categoryID, true, excludeProductID).
		Preload("Brand").
		Preload("Images").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetByCategoryIDs(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]models.Product, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	q := p.db.WithContext(ctx).
		Where("category_id IN ? AND is_active = ?", categoryIDs, true)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var products []models.Product
	err := q.
		Preload("Brand").
		Preload("Images").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetBySizeMatch(ctx context.Context, sizesByType map[string][]string, excludeIDs []string, limit int) ([]models.Product, error) {
	sizeCond, sizeArgs := sizeMatchCondition(sizesByType)
	if sizeCond == "" {
		return nil, nil
	}

	q := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN product_variants ON product_variants.product_id = products.id").
		Where("product_variants.is_available = ?", true).
		Where(sizeCond, sizeArgs...).
		Where("products.is_active = ?", true)
	if len(excludeIDs) > 0 {
		q = q.Where("products.id NOT IN ?", excludeIDs)
	}

	var products []models.Product
	err := q.
		Group("products.id").
		Preload("Brand").
		Preload("Images").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// GetMostViewed ranks active products by their count of view activities.
func (p *productRepository) GetMostViewed(ctx context.Context, excludeIDs []string, limit int) ([]models.Product, error) {
	q := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*, COUNT(user_activities.id) AS view_count").
		Joins("LEFT JOIN user_activities ON user_activities.product_id = products.id AND user_activities.activity_type = ?", models.ActivityView).
		Where("products.is_active = ?", true)
	if len(excludeIDs) > 0 {
		q = q.Where("products.id NOT IN ?", excludeIDs)
	}

	var products []models.Product
	err := q.
		Group("products.id").
		Order("view_count DESC").
		Order("products.name ASC").
		Preload("Brand").
		Preload("Images").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// PriceRange reports the cheapest and most expensive active product, for the
// listing sidebar filter.
func (p *productRepository) PriceRange(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var result struct {
		MinPrice decimal.Decimal
		MaxPrice decimal.Decimal
	}
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("MIN(current_price) AS min_price, MAX(current_price) AS max_price").
		Where("is_active = ?", true).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return result.MinPrice, result.MaxPrice, nil
}
