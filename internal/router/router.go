package router

import (
	"log"

	"github.com/anvers19/devfolio/backend/internal/handlers"
	"github.com/anvers19/devfolio/backend/internal/listeners"
	"github.com/anvers19/devfolio/backend/internal/middleware"
	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/internal/repositories"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// The event bus instance is constructed by the caller so that the same bus
// the interaction handlers publish to is the one the notification listener
// is registered on.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, bus *events.Bus, uploadDir, jwtSecret string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
		&models.PostView{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	projectRepo := repositories.NewPostgresProjectRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postViewRepo := repositories.NewPostgresPostViewRepository(pgdb)
	mediaRepo := repositories.NewMongoMediaRepository(mgClient.Database("devfolio"))

	// --- Notification pipeline ---
	// Interaction handlers publish to the bus; this listener is the only
	// writer path into the notification store.
	notificationListener := listeners.NewNotificationListener(commentRepo, postRepo, followRepo, notificationRepo)
	notificationListener.Register(bus)
	log.Println("Notification listener registered.")

	// --- Public routes ---
	public := e.Group("/api/v1")
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	authHandler.RegisterAuthRoutes(public.Group("/auth"))

	profileHandler := handlers.NewProfileHandler(profileRepo)
	profileHandler.RegisterPublicProfileRoutes(public)

	projectHandler := handlers.NewProjectHandler(projectRepo)
	projectHandler.RegisterPublicProjectRoutes(public)

	postHandler := handlers.NewPostHandler(postRepo, bus)
	postHandler.RegisterPublicPostRoutes(public)
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	profileHandler.RegisterProfileRoutes(api)
	projectHandler.RegisterProjectRoutes(api)
	postHandler.RegisterPostRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, bus)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, bus)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, bus)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	historyHandler := handlers.NewHistoryHandler(postViewRepo, postRepo)
	historyHandler.RegisterHistoryRoutes(api)

	mediaHandler := handlers.NewMediaHandler(mediaRepo, uploadDir)
	mediaHandler.RegisterMediaRoutes(api)

	// Uploaded files are served statically
	e.Static("/uploads", uploadDir)

	log.Println("All routes configured.")
}
