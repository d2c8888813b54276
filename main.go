package main

import (
	"net/http"
	"time"

	"newshub/config"
	"newshub/handlers"
	"newshub/mailer"
	"newshub/middleware"
	"newshub/pkg/logger"
	"newshub/repositories"
	"newshub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()
	db := config.InitDB(cfg.Database)

	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	mail := mailer.NewSMTPMailer(cfg.SMTP, log)

	authService := services.NewAuthService(userRepo, mail, cfg.JWT, cfg.App.BaseURL, log)
	articleService := services.NewArticleService(
		articleRepo, tagRepo, categoryRepo, userRepo, notificationRepo,
		mail, cfg.App.BaseURL, log,
	)
	commentService := services.NewCommentService(
		commentRepo, articleRepo, userRepo, notificationRepo,
		mail, cfg.App.BaseURL, log,
	)
	categoryService := services.NewCategoryService(categoryRepo, log)
	userService := services.NewUserService(userRepo, articleRepo, commentRepo, log)
	notificationService := services.NewNotificationService(notificationRepo, log)
	newsletterService := services.NewNewsletterService(subscriberRepo, mail, log)
	contactService := services.NewContactService(contactRepo, mail, log)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, cfg.App.UploadDir)
	commentHandler := handlers.NewCommentHandler(commentService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(userService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static("/uploads", cfg.App.UploadDir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/login", authHandler.Login)
			auth.POST("/oauth", authHandler.OAuthSignIn)
			auth.POST("/verify", authHandler.VerifyEmail)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		api.GET("/articles", articleHandler.GetArticles)
		api.GET("/articles/:id", articleHandler.GetArticle)
		api.GET("/articles/:id/comments", commentHandler.GetComments)
		api.GET("/slug/:slug", articleHandler.GetArticleBySlug)
		api.GET("/tags", articleHandler.GetTags)
		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:slug", categoryHandler.GetCategoryBySlug)
		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/contact", contactHandler.SubmitContact)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
		{
			authed.POST("/articles", articleHandler.CreateArticle)
			authed.PUT("/articles/:id", articleHandler.UpdateArticle)
			authed.DELETE("/articles/:id", articleHandler.DeleteArticle)
			authed.POST("/articles/:id/comments", commentHandler.CreateComment)
			authed.DELETE("/articles/:id/comments/:commentId", commentHandler.DeleteComment)

			authed.GET("/dashboard/articles", articleHandler.GetDashboardArticles)
			authed.GET("/me", authHandler.GetProfile)
			authed.PUT("/me", authHandler.UpdateProfile)
			authed.PUT("/me/password", authHandler.UpdatePassword)
			authed.GET("/notifications", notificationHandler.GetNotifications)
			authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)

			adminOnly := authed.Group("")
			adminOnly.Use(middleware.RequireAdmin())
			{
				adminOnly.POST("/categories", categoryHandler.CreateCategory)
				adminOnly.PUT("/categories/:id", categoryHandler.UpdateCategory)
				adminOnly.DELETE("/categories/:id", categoryHandler.DeleteCategory)

				adminOnly.GET("/admin/users", adminHandler.GetUsers)
				adminOnly.PUT("/admin/users/:id/role", adminHandler.UpdateRole)
				adminOnly.DELETE("/admin/users/:id", adminHandler.DeleteAccount)
				adminOnly.POST("/admin/newsletter", newsletterHandler.Send)
			}
		}
	}

	log.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
