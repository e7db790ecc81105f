package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shareit/internal/clock"
	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/middleware"
	"shareit/internal/modules/auth"
	"shareit/internal/modules/booking"
	"shareit/internal/modules/item"
	"shareit/internal/modules/request"
	"shareit/internal/modules/user"
	jwtsvc "shareit/internal/pkg/jwt"
	"shareit/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	clk := clock.System{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	itemService := item.NewService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, clk)
	itemHandler := item.NewHandler(itemService)

	requestService := request.NewService(requestRepo, userRepo, itemRepo, clk)
	requestHandler := request.NewHandler(requestService)

	bookingService := booking.NewService(bookingRepo, userRepo, itemRepo, clk, logger)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		userHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			userHandler.RegisterProtectedRoutes(protected)
			itemHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
