package server

import (
	"log"
	"strings"
	"time"

	"anphu.vn/residencehub/internal/config"
	"anphu.vn/residencehub/internal/middleware"
	"anphu.vn/residencehub/pkg/storage"

	billingHttp "anphu.vn/residencehub/internal/modules/billing/delivery/http"
	billingRepo "anphu.vn/residencehub/internal/modules/billing/repository"
	billingService "anphu.vn/residencehub/internal/modules/billing/service"

	familyHttp "anphu.vn/residencehub/internal/modules/family/delivery/http"
	familyRepo "anphu.vn/residencehub/internal/modules/family/repository"
	familyService "anphu.vn/residencehub/internal/modules/family/service"

	feedbackHttp "anphu.vn/residencehub/internal/modules/feedback/delivery/http"
	feedbackRepo "anphu.vn/residencehub/internal/modules/feedback/repository"
	feedbackService "anphu.vn/residencehub/internal/modules/feedback/service"

	lockerHttp "anphu.vn/residencehub/internal/modules/locker/delivery/http"
	lockerRepo "anphu.vn/residencehub/internal/modules/locker/repository"
	lockerService "anphu.vn/residencehub/internal/modules/locker/service"

	notiHttp "anphu.vn/residencehub/internal/modules/notification/delivery/http"
	notifRepo "anphu.vn/residencehub/internal/modules/notification/repository"
	notifService "anphu.vn/residencehub/internal/modules/notification/service"

	residenceHttp "anphu.vn/residencehub/internal/modules/residence/delivery/http"
	residenceRepo "anphu.vn/residencehub/internal/modules/residence/repository"
	residenceService "anphu.vn/residencehub/internal/modules/residence/service"

	searchService "anphu.vn/residencehub/internal/modules/search/service"

	surveyHttp "anphu.vn/residencehub/internal/modules/survey/delivery/http"
	surveyRepo "anphu.vn/residencehub/internal/modules/survey/repository"
	surveyService "anphu.vn/residencehub/internal/modules/survey/service"

	userHttp "anphu.vn/residencehub/internal/modules/user/delivery/http"
	userRepo "anphu.vn/residencehub/internal/modules/user/repository"
	userService "anphu.vn/residencehub/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	usersRepository := userRepo.NewUserRepository(db)
	imageStorage, err := storage.NewCloudinaryStorage(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryUploadFolder,
	)
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := searchService.NewSearchService(meiliClient)

	authSvc := userService.NewAuthService(usersRepository, imageStorage)
	authHandler := userHttp.NewAuthHandler(authSvc)

	userSvc := userService.NewUserService(usersRepository, imageStorage)
	userHandler := userHttp.NewUserHandler(userSvc)

	// Notification Module
	notificationRepository := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notificationRepository, redisClient)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc, redisClient)

	familyRepository := familyRepo.NewFamilyRepository(db)
	familySvc := familyService.NewFamilyService(familyRepository, notificationSvc)
	familyHandler := familyHttp.NewFamilyHandler(familySvc)

	billingRepository := billingRepo.NewBillingRepository(db)
	billingSvc := billingService.NewBillingService(billingRepository, imageStorage, notificationSvc)
	billingHandler := billingHttp.NewBillingHandler(billingSvc)

	lockerRepository := lockerRepo.NewLockerRepository(db)
	lockerSvc := lockerService.NewLockerService(lockerRepository, notificationSvc, searchSvc)
	lockerHandler := lockerHttp.NewLockerHandler(lockerSvc)

	feedbackRepository := feedbackRepo.NewFeedbackRepository(db)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepository, searchSvc)
	feedbackHandler := feedbackHttp.NewFeedbackHandler(feedbackSvc)

	surveyRepository := surveyRepo.NewSurveyRepository(db)
	surveySvc := surveyService.NewSurveyService(surveyRepository)
	surveyHandler := surveyHttp.NewSurveyHandler(surveySvc)

	residenceRepository := residenceRepo.NewResidenceRepository(db)
	residenceSvc := residenceService.NewResidenceService(residenceRepository, usersRepository)
	residenceHandler := residenceHttp.NewResidenceHandler(residenceSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(usersRepository)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/services", billingHandler.GetServices)
	api.GET("/lockers", lockerHandler.GetLockers)
	api.GET("/lockers/:id/packages", lockerHandler.GetLockerPackages)
	api.GET("/packages", lockerHandler.SearchPackages)
	api.GET("/feedbacks", feedbackHandler.GetFeedbacks)
	api.GET("/surveyforms/:id", surveyHandler.GetForm)
	api.GET("/surveyresponses", surveyHandler.GetResponses)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.GetAllUsers)
			admin.DELETE("/users/:id", userHandler.DeleteUser)
			admin.PATCH("/users/:id/set-active", userHandler.SetActive)

			admin.PATCH("/resident-families/:id/approve", familyHandler.ApproveFamilyMember)
			admin.POST("/resident-families/:id/access-cards", familyHandler.IssueAccessCard)

			admin.POST("/bills", billingHandler.CreateBill)
			admin.POST("/bills/:id/payments", billingHandler.CreatePayment)

			admin.POST("/lockers", lockerHandler.CreateLocker)
			admin.POST("/lockers/:id/packages", lockerHandler.CreatePackage)
			admin.PATCH("/lockers/:id/packages/:pid/status", lockerHandler.UpdatePackageStatus)
			admin.DELETE("/lockers/:id/packages/:pid", lockerHandler.DeletePackage)

			admin.POST("/surveyforms", surveyHandler.CreateForm)

			admin.POST("/apartments", residenceHandler.CreateApartment)
			admin.POST("/contracts", residenceHandler.CreateContract)
		}

		// User routes
		protected.GET("/users/current-user", userHandler.GetCurrentUser)
		protected.PATCH("/users/current-user", userHandler.UpdateCurrentUser)
		protected.POST("/users/:id/register-access-card", familyHandler.RegisterFamilyMember)
		protected.GET("/users/:id/access-card", familyHandler.GetFamilyMembers)

		// Billing routes
		protected.GET("/bills", billingHandler.GetBills)
		protected.GET("/bills/:id/services", billingHandler.GetBillServices)
		protected.GET("/payments", billingHandler.GetPayments)
		protected.GET("/payments/:id", billingHandler.GetPayment)
		protected.PATCH("/payments/:id/proof", billingHandler.SubmitProof)

		// Feedback routes
		protected.POST("/feedbacks", feedbackHandler.CreateFeedback)

		// Survey routes
		protected.POST("/surveyforms/:id/add-question-with-answers", surveyHandler.AddQuestionWithAnswers)

		// Residence routes
		protected.GET("/apartments", residenceHandler.GetApartments)
		protected.GET("/contracts", residenceHandler.GetContracts)

		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PATCH("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
