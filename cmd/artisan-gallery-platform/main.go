package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/handlers"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/middleware"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/cache"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/cart"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/config"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/health"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/metrics"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/telemetry"
	"github.com/anayakhandelwal/artisan-gallery-platform/pkg/sendgrid"
	"github.com/anayakhandelwal/artisan-gallery-platform/pkg/stripe"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	guestStore := repository.NewGuestCartStore(redisClient, cfg.GuestCart.TTL)
	cartManager := cart.NewManager(guestStore, repos.Cart, logger)
	cartService := service.NewCartService(cartManager)
	cartHandler := handlers.NewCartHandler(cartService)

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService, cartService)

	artworkService := service.NewArtworkService(repos.Artwork, redisCache)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	blogService := service.NewBlogService(repos.Blog)
	blogHandler := handlers.NewBlogHandler(blogService)
	testimonialService := service.NewTestimonialService(repos.Testimonial)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Artwork)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Order, stripeClient, cfg.Stripe.SupportedCurrencies)
	paymentHandler := handlers.NewPaymentHandler(paymentService, orderService)
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	// cart routes serve guests and users alike
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Identify(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Identify(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.Identify(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items", authMiddleware.Identify(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Identify(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/drawer/open", authMiddleware.Identify(cartHandler.OpenDrawer()))
	routerMux.HandleFunc("POST /api/v1/cart/drawer/close", authMiddleware.Identify(cartHandler.CloseDrawer()))

	routerMux.HandleFunc("GET /api/v1/artworks", artworkHandler.ListArtworks())
	routerMux.HandleFunc("GET /api/v1/artworks/{id}", artworkHandler.GetArtwork())
	routerMux.HandleFunc("POST /api/v1/artworks", authMiddleware.Authenticate(artworkHandler.CreateArtwork()))
	routerMux.HandleFunc("PUT /api/v1/artworks/{id}", authMiddleware.Authenticate(artworkHandler.UpdateArtwork()))
	routerMux.HandleFunc("DELETE /api/v1/artworks/{id}", authMiddleware.Authenticate(artworkHandler.DeleteArtwork()))

	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("GET /api/v1/blog", blogHandler.ListPosts())
	routerMux.HandleFunc("GET /api/v1/blog/{slug}", blogHandler.GetPost())
	routerMux.HandleFunc("POST /api/v1/blog", authMiddleware.Authenticate(blogHandler.CreatePost()))
	routerMux.HandleFunc("PUT /api/v1/blog/{id}", authMiddleware.Authenticate(blogHandler.UpdatePost()))
	routerMux.HandleFunc("DELETE /api/v1/blog/{id}", authMiddleware.Authenticate(blogHandler.DeletePost()))

	routerMux.HandleFunc("GET /api/v1/testimonials", testimonialHandler.ListTestimonials())
	routerMux.HandleFunc("POST /api/v1/testimonials", authMiddleware.Authenticate(testimonialHandler.CreateTestimonial()))
	routerMux.HandleFunc("PUT /api/v1/testimonials/{id}", authMiddleware.Authenticate(testimonialHandler.UpdateTestimonial()))
	routerMux.HandleFunc("DELETE /api/v1/testimonials/{id}", authMiddleware.Authenticate(testimonialHandler.DeleteTestimonial()))

	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))

	routerMux.HandleFunc("POST /api/v1/payments", authMiddleware.Authenticate(paymentHandler.CreatePayment()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	routerMux.HandleFunc("POST /api/v1/notifications/email", authMiddleware.Authenticate(notificationHandler.SendEmail()))
	routerMux.HandleFunc("GET /api/v1/notifications", authMiddleware.Authenticate(notificationHandler.ListNotifications()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
