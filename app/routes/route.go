package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/modashop/go-catalog/app/handlers"
	"github.com/modashop/go-catalog/app/middlewares"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/modashop/go-catalog/app/services"
	"github.com/modashop/go-catalog/app/utils/renderer"
	"github.com/modashop/go-catalog/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, store sessions.SessionStore) *mux.Router {
	productRepo := repositories.NewProductRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	discountRepo := repositories.NewDiscountRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	searchRepo := repositories.NewSearchRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	siteRepo := repositories.NewSiteRepository(db)
	userRepo := repositories.NewUserRepository(db)

	validate := validator.New()

	pricing := services.NewPricingService(discountRepo)
	catalog := services.NewCatalogService(productRepo, variantRepo, categoryRepo, discountRepo, reviewRepo, blogRepo, pricing)
	search := services.NewSearchService(productRepo, blogRepo, searchRepo)
	reviews := services.NewReviewService(reviewRepo, productRepo, validate)
	wishlist := services.NewWishlistService(productRepo, userRepo)
	blogs := services.NewBlogService(blogRepo, validate)
	site := services.NewSiteService(siteRepo, categoryRepo, productRepo, validate)

	rnd := renderer.New()

	homeHandler := handlers.NewHomeHandler(rnd, catalog, site)
	shopHandler := handlers.NewShopHandler(rnd, catalog)
	productHandler := handlers.NewProductHandler(rnd, catalog, reviews, wishlist)
	searchHandler := handlers.NewSearchHandler(rnd, search)
	blogHandler := handlers.NewBlogHandler(rnd, blogs)
	siteHandler := handlers.NewSiteHandler(rnd, site)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.UserContext(store))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/base-context", homeHandler.BaseContext).Methods("GET")

	router.HandleFunc("/shop", shopHandler.Shop).Methods("GET")
	router.HandleFunc("/category/{slug}", shopHandler.Category).Methods("GET")

	router.HandleFunc("/products/{id}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", productHandler.SubmitReview).Methods("POST")

	router.Handle("/products/{id}/like",
		middlewares.RequireUser(http.HandlerFunc(productHandler.ToggleLike))).Methods("POST")
	router.Handle("/wishlist",
		middlewares.RequireUser(http.HandlerFunc(productHandler.Wishlist))).Methods("GET")

	router.HandleFunc("/search/products", searchHandler.Products).Methods("GET")
	router.HandleFunc("/search/blogs", searchHandler.Blogs).Methods("GET")

	router.HandleFunc("/blogs", blogHandler.List).Methods("GET")
	router.HandleFunc("/blogs/{slug}", blogHandler.Detail).Methods("GET")
	router.HandleFunc("/blogs/{slug}/comments", blogHandler.AddComment).Methods("POST")
	router.HandleFunc("/comments/{id}/replies", blogHandler.AddReply).Methods("POST")

	router.HandleFunc("/contact", siteHandler.Contact).Methods("GET")
	router.HandleFunc("/contact/messages", siteHandler.SubmitMessage).Methods("POST")
	router.HandleFunc("/about", siteHandler.About).Methods("GET")

	return router
}
