// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"github.com/shin101/warbler/cache"
	"github.com/shin101/warbler/config"
	"github.com/shin101/warbler/database"
	"github.com/shin101/warbler/repository"
	"github.com/shin101/warbler/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	db          *gorm.DB
	redis       *redis.Client
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
	userService *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDB(cfg, db)
}

// NewServerWithDB wires the server against an existing database handle.
// Tests use this with an in-memory SQLite database.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	userService, err := service.NewUserService(userRepo, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      cfg,
		db:          db,
		redis:       cache.GetClient(),
		userRepo:    userRepo,
		followRepo:  repository.NewFollowRepository(db),
		messageRepo: repository.NewMessageRepository(db),
		likeRepo:    repository.NewLikeRepository(db),
		userService: userService,
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	prometheus := fiberprometheus.New("warbler")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
}

// SetupRoutes registers all API routes on the Fiber app
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "warbler api",
			"version": "1.0.0",
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	// User routes
	users := api.Group("/users")
	users.Get("/me", s.AuthRequired, s.GetMyProfile)
	users.Delete("/me", s.AuthRequired, s.DeleteMyAccount)
	users.Get("/:id", s.GetUserProfile)
	users.Get("/:id/messages", s.GetUserMessages)
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Get("/:id/likes", s.GetLikedMessages)
	users.Post("/:id/follow", s.AuthRequired, s.FollowUser)
	users.Delete("/:id/follow", s.AuthRequired, s.UnfollowUser)

	// Message routes
	messages := api.Group("/messages")
	messages.Get("/:id", s.GetMessage)
	messages.Post("/", s.AuthRequired, s.CreateMessage)
	messages.Delete("/:id", s.AuthRequired, s.DeleteMessage)
	messages.Post("/:id/like", s.AuthRequired, s.LikeMessage)
	messages.Delete("/:id/like", s.AuthRequired, s.UnlikeMessage)
}
