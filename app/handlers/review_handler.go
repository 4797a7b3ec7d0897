package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const reviewPageSize = 10

type ReviewHandler struct {
	render      *render.Render
	reviewRepo  repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	validator   *validator.Validate
}

func NewReviewHandler(r *render.Render, reviewRepo repositories.ReviewRepositoryImpl, productRepo repositories.ProductRepositoryImpl, validator *validator.Validate) *ReviewHandler {
	return &ReviewHandler{
		render:      r,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		validator:   validator,
	}
}

type ReviewForm struct {
	Rating        int    `form:"rating" validate:"required,gte=1,lte=5"`
	Title         string `form:"title" validate:"required,max=255"`
	Content       string `form:"content" validate:"omitempty"`
	SizePurchased string `form:"size_purchased" validate:"omitempty,max=20"`
	FitRating     int    `form:"fit_rating" validate:"required,gte=1,lte=5"`
}

func (h *ReviewHandler) WriteReviewGetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(helpers.ContextKeyUserID).(string)
	productID := mux.Vars(r)["productID"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("WriteReviewGetHandler: Error loading product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	existing, err := h.reviewRepo.FindByProductAndUser(ctx, product.ID, userID)
	if err != nil {
		log.Printf("WriteReviewGetHandler: Error checking existing review: %v", err)
		http.Error(w, "Failed to load review state", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Redirect(w, r, "/products/"+product.Slug+"?status=warning&message="+url.QueryEscape("You have already reviewed this product."), http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   "Write a Review",
		"Product": product,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: product.Name, URL: "/products/" + product.Slug},
			{Name: "Write a Review", URL: ""},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "reviews/write", data)
}

func (h *ReviewHandler) WriteReviewPostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(helpers.ContextKeyUserID).(string)
	productID := mux.Vars(r)["productID"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("WriteReviewPostHandler: Error loading product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("WriteReviewPostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, "/reviews/write/"+product.ID+"?status=error&message="+url.QueryEscape("Something went wrong processing your review."), http.StatusSeeOther)
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	fitRating, _ := strconv.Atoi(r.FormValue("fit_rating"))
	form := ReviewForm{
		Rating:        rating,
		Title:         r.FormValue("title"),
		Content:       r.FormValue("content"),
		SizePurchased: r.FormValue("size_purchased"),
		FitRating:     fitRating,
	}

	if err := h.validator.Struct(form); err != nil {
		fieldErrors := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":       "Write a Review",
			"Product":     product,
			"Form":        form,
			"FieldErrors": fieldErrors,
		})
		_ = h.render.HTML(w, http.StatusUnprocessableEntity, "reviews/write", data)
		return
	}

	review := &models.Review{
		ProductID:     product.ID,
		UserID:        userID,
		Rating:        form.Rating,
		Title:         form.Title,
		Content:       form.Content,
		SizePurchased: form.SizePurchased,
		FitRating:     form.FitRating,
	}

	// Reviews stay hidden until moderation approves them.
	if err := h.reviewRepo.Create(ctx, review, r.PostForm["images"]); err != nil {
		if err == repositories.ErrDuplicateReview {
			http.Redirect(w, r, "/products/"+product.Slug+"?status=warning&message="+url.QueryEscape("You have already reviewed this product."), http.StatusSeeOther)
			return
		}
		log.Printf("WriteReviewPostHandler: Error creating review for user %s: %v", userID, err)
		http.Redirect(w, r, "/reviews/write/"+product.ID+"?status=error&message="+url.QueryEscape("Failed to submit your review."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/products/"+product.Slug+"?status=success&message="+url.QueryEscape("Review submitted! It will appear after moderation."), http.StatusSeeOther)
}

func (h *ReviewHandler) ProductReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["productID"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("ProductReviews: Error loading product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * reviewPageSize

	reviews, total, err := h.reviewRepo.GetApprovedByProduct(ctx, product.ID, reviewPageSize, offset)
	if err != nil {
		log.Printf("ProductReviews: Error loading reviews for %s: %v", product.ID, err)
		http.Error(w, "Failed to load reviews", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Reviews for " + product.Name,
		"Product":     product,
		"Reviews":     reviews,
		"CurrentPage": page,
		"TotalPages":  int((total + reviewPageSize - 1) / reviewPageSize),
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: product.Name, URL: "/products/" + product.Slug},
			{Name: "Reviews", URL: ""},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "reviews/list", data)
}

// HelpfulVote bumps a vote counter and returns the fresh counts. There is no
// vote identity record, so repeat votes from the same caller all count.
func (h *ReviewHandler) HelpfulVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := mux.Vars(r)["reviewID"]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	action := r.FormValue("action")
	if action != "helpful" && action != "unhelpful" {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	review, err := h.reviewRepo.AddVote(ctx, reviewID, action == "helpful")
	if err != nil {
		log.Printf("HelpfulVote: Error recording vote for review %s: %v", reviewID, err)
		http.Error(w, "Failed to record vote", http.StatusInternalServerError)
		return
	}
	if review == nil {
		http.NotFound(w, r)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"helpful_votes":   review.HelpfulVotes,
		"unhelpful_votes": review.UnhelpfulVotes,
	})
}
