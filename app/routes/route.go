package routes

import (
	"net/http"

	"github.com/fitfinder/fitfinder/app/configs"
	"github.com/fitfinder/fitfinder/app/handlers"
	"github.com/fitfinder/fitfinder/app/middlewares"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/services"
	"github.com/fitfinder/fitfinder/app/utils/renderer"
	"github.com/fitfinder/fitfinder/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) http.Handler {
	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewSizeProfileRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	affiliateRepo := repositories.NewAffiliateRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)

	affiliateSvc := services.NewAffiliateService(affiliateRepo, activityRepo)
	recommendationSvc := services.NewRecommendationService(productRepo, activityRepo, profileRepo)

	homeHandler := handlers.NewHomeHandler(render, productRepo, categoryRepo, profileRepo)
	productHandler := handlers.NewProductHandler(render, productRepo, variantRepo, categoryRepo, brandRepo, profileRepo, reviewRepo, affiliateRepo, wishlistRepo, activityRepo, sessionStore)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, validate)
	profileHandler := handlers.NewProfileHandler(render, profileRepo, prefRepo, validate)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateSvc, sessionStore)
	reviewHandler := handlers.NewReviewHandler(render, reviewRepo, productRepo, validate)
	recommendationHandler := handlers.NewRecommendationHandler(render, recommendationSvc, wishlistRepo)

	router := mux.NewRouter()
	router.Use(middlewares.CurrentUserMiddleware(sessionStore, userRepo))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/api/size-availability/{productID}", productHandler.SizeAvailability).Methods("GET")
	router.HandleFunc("/affiliates/redirect/{linkID}", affiliateHandler.Redirect).Methods("GET")
	router.HandleFunc("/reviews/product/{productID}", reviewHandler.ProductReviews).Methods("GET")
	router.HandleFunc("/reviews/helpful/{reviewID}", reviewHandler.HelpfulVote).Methods("POST")

	router.HandleFunc("/register", authHandler.RegisterGetHandler).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPostHandler).Methods("POST")
	router.HandleFunc("/login", authHandler.LoginGetHandler).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPostHandler).Methods("POST")
	router.HandleFunc("/logout", authHandler.LogoutHandler).Methods("GET")

	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(middlewares.RequireLogin)
	authenticated.HandleFunc("/profile", profileHandler.ProfileGetHandler).Methods("GET")
	authenticated.HandleFunc("/profile", profileHandler.ProfilePostHandler).Methods("POST")
	authenticated.HandleFunc("/wishlist", recommendationHandler.Wishlist).Methods("GET")
	authenticated.HandleFunc("/wishlist/toggle/{productID}", productHandler.ToggleWishlist).Methods("POST")
	authenticated.HandleFunc("/recommendations", recommendationHandler.Recommendations).Methods("GET")
	authenticated.HandleFunc("/reviews/write/{productID}", reviewHandler.WriteReviewGetHandler).Methods("GET")
	authenticated.HandleFunc("/reviews/write/{productID}", reviewHandler.WriteReviewPostHandler).Methods("POST")

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)

	return csrfMiddleware(router)
}
