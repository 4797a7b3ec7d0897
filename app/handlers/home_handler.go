package handlers

import (
	"log"
	"net/http"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	profileRepo  repositories.SizeProfileRepositoryImpl
}

func NewHomeHandler(r *render.Render, productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, profileRepo repositories.SizeProfileRepositoryImpl) *HomeHandler {
	return &HomeHandler{
		render:       r,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := h.productRepo.GetFeatured(ctx, 8)
	if err != nil {
		log.Printf("HomeHandler.Home: Error loading featured products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	var sizeMatched []models.Product
	if userID, ok := ctx.Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		profile, err := h.profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			log.Printf("HomeHandler.Home: Error loading size profile for user %s: %v", userID, err)
		} else if profile != nil && profile.HasSizes() {
			sizeMatched, err = h.productRepo.GetBySizeMatch(ctx, profile.SizesByType(), nil, 6)
			if err != nil {
				log.Printf("HomeHandler.Home: Error loading size-matched products for user %s: %v", userID, err)
			}
		}
	}

	popularCategories, err := h.categoryRepo.GetPopular(ctx, 6)
	if err != nil {
		log.Printf("HomeHandler.Home: Error loading popular categories: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":             "FitFinder — fashion that fits",
		"FeaturedProducts":  featured,
		"SizeMatched":       sizeMatched,
		"PopularCategories": popularCategories,
	})
	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
