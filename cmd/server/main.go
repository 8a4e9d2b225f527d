package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"methakadai-be/internal/cart"
	"methakadai-be/internal/category"
	"methakadai-be/internal/config"
	"methakadai-be/internal/db"
	"methakadai-be/internal/httpx"
	"methakadai-be/internal/logger"
	"methakadai-be/internal/mailer"
	"methakadai-be/internal/middleware"
	"methakadai-be/internal/order"
	"methakadai-be/internal/otp"
	"methakadai-be/internal/product"
	"methakadai-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	mailSender, err := mailer.New(cfg)
	if err != nil {
		log.Fatal("failed to configure mailer", zap.Error(err))
	}

	otpStore := otp.NewStore(otp.DefaultTTL)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, otpStore, mailSender)
	userHandler := user.NewHandler(userSvc)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)
	productHandler := product.NewHandler(productSvc)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categorySvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderSvc)

	cartHandler := cart.NewHandler(cart.NewStore())

	ctx := context.Background()
	if err := userSvc.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Fatal("failed to seed admin account", zap.Error(err))
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "ok")
	})

	// Auth & OTP
	mux.HandleFunc("POST /api/send-otp", userHandler.SendOTP)
	mux.HandleFunc("POST /api/forget-otp", userHandler.SendForgetOTP)
	mux.HandleFunc("POST /api/signup", userHandler.Signup)
	mux.HandleFunc("POST /api/reset-password", userHandler.ResetPassword)
	mux.HandleFunc("POST /api/login", userHandler.Login)

	// Profiles
	mux.HandleFunc("GET /api/users/{username}", middleware.RequireAuth(userHandler.GetProfile))
	mux.HandleFunc("PUT /api/users/{username}", middleware.RequireAuth(userHandler.UpdateProfile))

	// Catalog
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.Get)
	mux.HandleFunc("POST /api/products", middleware.RequireAdmin(productHandler.Create))
	mux.HandleFunc("PUT /api/products/{id}", middleware.RequireAdmin(productHandler.Update))
	mux.HandleFunc("DELETE /api/products/{id}", middleware.RequireAdmin(productHandler.Delete))
	mux.HandleFunc("GET /api/seed", productHandler.Seed)

	// Categories
	mux.HandleFunc("GET /api/categories", categoryHandler.List)
	mux.HandleFunc("POST /api/categories", middleware.RequireAdmin(categoryHandler.Add))
	mux.HandleFunc("PUT /api/categories/delete", middleware.RequireAdmin(categoryHandler.Delete))

	// Cart & wishlist (session scoped)
	mux.HandleFunc("GET /api/cart", middleware.RequireAuth(cartHandler.GetCart))
	mux.HandleFunc("POST /api/cart/items", middleware.RequireAuth(cartHandler.AddItem))
	mux.HandleFunc("PUT /api/cart/items/{productID}", middleware.RequireAuth(cartHandler.UpdateItem))
	mux.HandleFunc("DELETE /api/cart/items/{productID}", middleware.RequireAuth(cartHandler.RemoveItem))
	mux.HandleFunc("POST /api/cart/clear", middleware.RequireAuth(cartHandler.ClearCart))
	mux.HandleFunc("GET /api/wishlist", middleware.RequireAuth(cartHandler.GetWishlist))
	mux.HandleFunc("POST /api/wishlist/items", middleware.RequireAuth(cartHandler.AddWishItem))
	mux.HandleFunc("DELETE /api/wishlist/items/{productID}", middleware.RequireAuth(cartHandler.RemoveWishItem))

	// Orders
	mux.HandleFunc("POST /api/orders", middleware.RequireAuth(orderHandler.Create))
	mux.HandleFunc("GET /api/orders", middleware.RequireAdmin(orderHandler.ListAll))
	mux.HandleFunc("GET /api/myorders", middleware.RequireAuth(orderHandler.ListMine))
	mux.HandleFunc("PUT /api/orders/{id}/status", middleware.RequireAdmin(orderHandler.UpdateStatus))
	mux.HandleFunc("PUT /api/orders/{id}/cancel", middleware.RequireAuth(orderHandler.Cancel))

	// Chain: request id -> logging -> auth -> rate limit -> mux
	handler := logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.AuthMiddleware(
				middleware.RateLimitMiddleware(mux),
			),
		),
	)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server starting", zap.String("port", cfg.AppPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}
