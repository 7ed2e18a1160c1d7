package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/audit"
	"github.com/silverhalide/studio-api/internal/cache"
	"github.com/silverhalide/studio-api/internal/cleanup"
	"github.com/silverhalide/studio-api/internal/config"
	"github.com/silverhalide/studio-api/internal/handlers"
	infraRepo "github.com/silverhalide/studio-api/internal/infra/repository"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/payments"
	"github.com/silverhalide/studio-api/internal/storage"
	ucBooking "github.com/silverhalide/studio-api/internal/usecase/booking"
	ucJob "github.com/silverhalide/studio-api/internal/usecase/job"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	jobRepo := infraRepo.NewJobGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	store := storage.NewS3Store(cfg)
	cleanupDispatcher := cleanup.NewDispatcher(store)

	availabilityCache := cache.New(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	paymentSvc, err := payments.New(cfg)
	if err != nil {
		log.Printf("payments disabled: %v", err)
		paymentSvc = &payments.Service{}
	}

	// ======================================================
	// USE CASES — JOBS
	// ======================================================
	createJobUC := ucJob.NewCreateJob(jobRepo, auditDispatcher)
	updateJobUC := ucJob.NewUpdateJob(jobRepo, auditDispatcher)
	completeJobUC := ucJob.NewCompleteJob(jobRepo, auditDispatcher)
	deleteJobUC := ucJob.NewDeleteJob(jobRepo, cleanupDispatcher, auditDispatcher)
	importJobsUC := ucJob.NewBatchImportJobs(jobRepo, auditDispatcher)
	uploadDocumentUC := ucJob.NewUploadDocument(jobRepo, store, auditDispatcher)
	deleteDocumentUC := ucJob.NewDeleteDocument(jobRepo, cleanupDispatcher, auditDispatcher)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityCache)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		availabilityUC,
		availabilityCache,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		availabilityCache,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studioHandler := handlers.NewStudioHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	jobHandler := handlers.NewJobHandler(
		jobRepo,
		createJobUC,
		updateJobUC,
		completeJobUC,
		deleteJobUC,
		importJobsUC,
		paymentSvc,
	)
	jobDocumentHandler := handlers.NewJobDocumentHandler(jobRepo, uploadDocumentUC, deleteDocumentUC)

	bookingHandler := handlers.NewBookingHandler(db, cancelBookingUC, completeBookingUC)
	leadHandler := handlers.NewLeadHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/:slug/leads", publicHandler.CreateLead)
			publicAPI.GET("/:slug/galleries/:gslug", publicHandler.GetGallery)
			publicAPI.GET("/:slug/weather", publicHandler.WeatherForecast)
			publicAPI.GET("/:slug/session-suggestion", publicHandler.SessionSuggestion)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/studio", studioHandler.GetMeStudio)
			secured.PATCH("/me/studio", studioHandler.UpdateMeStudio)

			secured.GET("/me/clients", clientHandler.List)

			// ------------------------------
			// JOBS
			// ------------------------------
			secured.GET("/me/jobs", jobHandler.List)
			secured.POST("/me/jobs", jobHandler.Create)
			secured.POST("/me/jobs/import", jobHandler.Import)
			secured.GET("/me/jobs/export", jobHandler.Export)
			secured.GET("/me/jobs/:id", jobHandler.Get)
			secured.PATCH("/me/jobs/:id", jobHandler.Update)
			secured.PATCH("/me/jobs/:id/complete", jobHandler.Complete)
			secured.DELETE("/me/jobs/:id", jobHandler.Delete)
			secured.PUT("/me/jobs/:id/fields", jobHandler.PutCustomFields)
			secured.POST("/me/jobs/:id/payment-link", jobHandler.PaymentLink)

			secured.GET("/me/jobs/:id/documents", jobDocumentHandler.List)
			secured.POST("/me/jobs/:id/documents", jobDocumentHandler.Upload)
			secured.DELETE("/me/jobs/:id/documents/:docId", jobDocumentHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			// ------------------------------
			// LEADS / GALLERIES
			// ------------------------------
			secured.GET("/me/leads", leadHandler.List)
			secured.PATCH("/me/leads/:id", leadHandler.UpdateStatus)

			secured.GET("/me/galleries", galleryHandler.List)
			secured.POST("/me/galleries", galleryHandler.Create)
			secured.POST("/me/galleries/:id/media", galleryHandler.UploadMedia)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
