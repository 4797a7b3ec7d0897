package handlers

import (
	"log"
	"net/http"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/services"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type RecommendationHandler struct {
	render            *render.Render
	recommendationSvc *services.RecommendationService
	wishlistRepo      repositories.WishlistRepositoryImpl
}

func NewRecommendationHandler(r *render.Render, recommendationSvc *services.RecommendationService, wishlistRepo repositories.WishlistRepositoryImpl) *RecommendationHandler {
	return &RecommendationHandler{
		render:            r,
		recommendationSvc: recommendationSvc,
		wishlistRepo:      wishlistRepo,
	}
}

func (h *RecommendationHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(helpers.ContextKeyUserID).(string)

	recs, err := h.recommendationSvc.ForUser(ctx, userID)
	if err != nil {
		log.Printf("RecommendationHandler.Recommendations: Error building recommendations for user %s: %v", userID, err)
		http.Error(w, "Failed to load recommendations", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Recommended For You",
		"ByCategory":  recs.ByCategory,
		"SizeMatched": recs.SizeMatched,
		"MostViewed":  recs.MostViewed,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Recommendations", URL: "/recommendations"}},
	})
	_ = h.render.HTML(w, http.StatusOK, "recommendations/list", data)
}

func (h *RecommendationHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(helpers.ContextKeyUserID).(string)

	entries, err := h.wishlistRepo.GetByUser(ctx, userID)
	if err != nil {
		log.Printf("RecommendationHandler.Wishlist: Error loading wishlist for user %s: %v", userID, err)
		http.Error(w, "Failed to load wishlist", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "My Wishlist",
		"Entries":     entries,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Wishlist", URL: "/wishlist"}},
	})
	_ = h.render.HTML(w, http.StatusOK, "recommendations/wishlist", data)
}
