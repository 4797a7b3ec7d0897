package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/fitfinder/fitfinder/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

const productPageSize = 24

type ProductHandler struct {
	render        *render.Render
	productRepo   repositories.ProductRepositoryImpl
	variantRepo   repositories.VariantRepositoryImpl
	categoryRepo  repositories.CategoryRepositoryImpl
	brandRepo     repositories.BrandRepositoryImpl
	profileRepo   repositories.SizeProfileRepositoryImpl
	reviewRepo    repositories.ReviewRepositoryImpl
	affiliateRepo repositories.AffiliateRepositoryImpl
	wishlistRepo  repositories.WishlistRepositoryImpl
	activityRepo  repositories.ActivityRepositoryImpl
	sessionStore  sessions.SessionStore
}

func NewProductHandler(
	r *render.Render,
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	brandRepo repositories.BrandRepositoryImpl,
	profileRepo repositories.SizeProfileRepositoryImpl,
	reviewRepo repositories.ReviewRepositoryImpl,
	affiliateRepo repositories.AffiliateRepositoryImpl,
	wishlistRepo repositories.WishlistRepositoryImpl,
	activityRepo repositories.ActivityRepositoryImpl,
	sessionStore sessions.SessionStore,
) *ProductHandler {
	return &ProductHandler{
		render:        r,
		productRepo:   productRepo,
		variantRepo:   variantRepo,
		categoryRepo:  categoryRepo,
		brandRepo:     brandRepo,
		profileRepo:   profileRepo,
		reviewRepo:    reviewRepo,
		affiliateRepo: affiliateRepo,
		wishlistRepo:  wishlistRepo,
		activityRepo:  activityRepo,
		sessionStore:  sessionStore,
	}
}

// Products renders the filtered, sorted, paginated listing.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := repositories.ProductFilter{
		Search:       query.Get("search"),
		CategorySlug: query.Get("category"),
		BrandSlug:    query.Get("brand"),
		InStockOnly:  query.Get("availability") == "in_stock",
		Sort:         query.Get("sort"),
	}
	if minPrice := query.Get("min_price"); minPrice != "" {
		if parsed, err := decimal.NewFromString(minPrice); err == nil {
			filter.MinPrice = &parsed
		}
	}
	if maxPrice := query.Get("max_price"); maxPrice != "" {
		if parsed, err := decimal.NewFromString(maxPrice); err == nil {
			filter.MaxPrice = &parsed
		}
	}

	// The "my sizes" filter only applies to authenticated users with a
	// stored profile; everyone else sees the unfiltered listing.
	if query.Get("size_filter") == "my_sizes" {
		if userID, ok := ctx.Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
			profile, err := h.profileRepo.FindByUserID(ctx, userID)
			if err != nil {
				log.Printf("ProductHandler.Products: Error loading size profile for user %s: %v", userID, err)
			} else if profile != nil {
				filter.SizesByType = profile.SizesByType()
			}
		}
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * productPageSize

	products, total, err := h.productRepo.ListFiltered(ctx, filter, productPageSize, offset)
	if err != nil {
		log.Printf("ProductHandler.Products: Error listing products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("ProductHandler.Products: Error loading categories: %v", err)
	}
	brands, err := h.brandRepo.GetAll(ctx)
	if err != nil {
		log.Printf("ProductHandler.Products: Error loading brands: %v", err)
	}
	minPrice, maxPrice, err := h.productRepo.PriceRange(ctx)
	if err != nil {
		log.Printf("ProductHandler.Products: Error loading price range: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           "Products",
		"Products":        products,
		"Categories":      categories,
		"Brands":          brands,
		"PriceRangeMin":   minPrice,
		"PriceRangeMax":   maxPrice,
		"SearchQuery":     filter.Search,
		"CurrentCategory": filter.CategorySlug,
		"CurrentBrand":    filter.BrandSlug,
		"CurrentSort":     filter.Sort,
		"CurrentPage":     page,
		"TotalPages":      int((total + productPageSize - 1) / productPageSize),
		"Breadcrumbs":     []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Products", URL: "/products"}},
	})
	_ = h.render.HTML(w, http.StatusOK, "products/list", data)
}

// ProductDetail renders one product and records a view activity for
// authenticated callers.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading product %s: %v", slug, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)
	if userID != "" {
		sessionID := h.sessionStore.GetSessionID(w, r)
		if err := h.activityRepo.Log(ctx, userID, product.ID, models.ActivityView, sessionID, "detail"); err != nil {
			log.Printf("ProductHandler.ProductDetail: Error logging view for user %s: %v", userID, err)
		}
	}

	variants, err := h.variantRepo.GetAvailableByProduct(ctx, product.ID, "")
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading variants for %s: %v", product.ID, err)
	}

	var userSizes []string
	if userID != "" {
		profile, err := h.profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			log.Printf("ProductHandler.ProductDetail: Error loading size profile for user %s: %v", userID, err)
		} else if profile != nil {
			for _, sizes := range profile.SizesByType() {
				userSizes = append(userSizes, sizes...)
			}
		}
	}

	reviews, reviewTotal, err := h.reviewRepo.GetApprovedByProduct(ctx, product.ID, 5, 0)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading reviews for %s: %v", product.ID, err)
	}
	avgRating, err := h.reviewRepo.AverageRating(ctx, product.ID)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading average rating for %s: %v", product.ID, err)
	}
	ratingCounts, err := h.reviewRepo.RatingCounts(ctx, product.ID)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading rating counts for %s: %v", product.ID, err)
	}

	affiliateLinks, err := h.affiliateRepo.GetActiveLinksByProduct(ctx, product.ID)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading affiliate links for %s: %v", product.ID, err)
	}

	isWishlisted := false
	if userID != "" {
		isWishlisted, err = h.wishlistRepo.Exists(ctx, userID, product.ID)
		if err != nil {
			log.Printf("ProductHandler.ProductDetail: Error checking wishlist for user %s: %v", userID, err)
		}
	}

	similar, err := h.productRepo.GetSimilar(ctx, product.CategoryID, product.ID, 6)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: Error loading similar products for %s: %v", product.ID, err)
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
		{Name: product.Category.Name, URL: "/products?category=" + product.Category.Slug},
		{Name: product.Name, URL: "/products/" + product.Slug},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          product.Name,
		"Product":        product,
		"Variants":       variants,
		"UserSizes":      userSizes,
		"Reviews":        reviews,
		"ReviewTotal":    reviewTotal,
		"AvgRating":      avgRating,
		"RatingCounts":   ratingCounts,
		"AffiliateLinks": affiliateLinks,
		"IsWishlisted":   isWishlisted,
		"Similar":        similar,
		"Breadcrumbs":    breadcrumbs,
	})
	_ = h.render.HTML(w, http.StatusOK, "products/detail", data)
}

type sizeAvailability struct {
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
	Available bool   `json:"available"`
}

// SizeAvailability is the AJAX endpoint behind the size picker. Pure
// read-through projection, no write side effects.
func (h *ProductHandler) SizeAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["productID"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("ProductHandler.SizeAvailability: Error loading product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	variants, err := h.variantRepo.GetAvailableByProduct(ctx, product.ID, r.URL.Query().Get("color"))
	if err != nil {
		log.Printf("ProductHandler.SizeAvailability: Error loading variants for %s: %v", product.ID, err)
		http.Error(w, "Failed to load sizes", http.StatusInternalServerError)
		return
	}

	sizes := make([]sizeAvailability, 0, len(variants))
	for _, variant := range variants {
		sizes = append(sizes, sizeAvailability{
			Size:      variant.Size,
			Stock:     variant.StockQuantity,
			Available: variant.InStock(),
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"sizes": sizes})
}

// ToggleWishlist flips wishlist presence for (user, product). AJAX callers
// get JSON, everyone else a redirect back to the product.
func (h *ProductHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(helpers.ContextKeyUserID).(string)
	productID := mux.Vars(r)["productID"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("ProductHandler.ToggleWishlist: Error loading product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	action, err := h.wishlistRepo.Toggle(ctx, userID, product.ID)
	if err != nil {
		log.Printf("ProductHandler.ToggleWishlist: Error toggling product %s for user %s: %v", product.ID, userID, err)
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	if helpers.IsAJAX(r) {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"action":     action,
			"wishlisted": action == repositories.WishlistAdded,
		})
		return
	}

	http.Redirect(w, r, "/products/"+product.Slug, http.StatusSeeOther)
}
