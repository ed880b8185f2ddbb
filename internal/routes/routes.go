package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/audit"
	"github.com/courtdesk/court-scheduler/internal/config"
	"github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/handlers"
	infraRepo "github.com/courtdesk/court-scheduler/internal/infra/repository"
	"github.com/courtdesk/court-scheduler/internal/middleware"
	"github.com/courtdesk/court-scheduler/internal/storage"
	ucReservation "github.com/courtdesk/court-scheduler/internal/usecase/reservation"
	ucSchedule "github.com/courtdesk/court-scheduler/internal/usecase/schedule"
	ucSettings "github.com/courtdesk/court-scheduler/internal/usecase/settings"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	clock := schedule.SystemClock()
	photos := storage.NewPhotoStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	listDaySlotsUC := ucSchedule.NewListDaySlots(scheduleRepo, clock)

	createReservationUC := ucReservation.NewCreate(scheduleRepo, auditDispatcher)
	updateReservationUC := ucReservation.NewUpdate(scheduleRepo)
	cancelReservationUC := ucReservation.NewCancel(scheduleRepo, auditDispatcher)
	joinOpenPlayUC := ucReservation.NewJoin(scheduleRepo, auditDispatcher)

	updateSettingsUC := ucSettings.NewUpdate(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, scheduleRepo, cfg)
	meHandler := handlers.NewMeHandler(db)

	timeSlotHandler := handlers.NewTimeSlotHandler(db, listDaySlotsUC, auditDispatcher)
	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		updateReservationUC,
		cancelReservationUC,
		joinOpenPlayUC,
	)
	settingsHandler := handlers.NewSettingsHandler(scheduleRepo, updateSettingsUC)

	courtHandler := handlers.NewCourtHandler(db, photos)
	coachHandler := handlers.NewCoachHandler(db)
	clinicHandler := handlers.NewClinicHandler(db, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// Public booking endpoints are the abuse surface; everything behind
	// AuthMiddleware already requires a token.
	bookingLimiter := middleware.RateLimitMiddleware(rdb, 30, time.Minute)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
		}

		// ------------------------------
		// VENUE-SCOPED API
		// ------------------------------
		venue := api.Group("/:tenantSlug")
		venue.Use(middleware.TenantMiddleware(db))
		{
			// Public: browsing and booking.
			venue.GET("/time-slots/date/:date", timeSlotHandler.ListByDate)

			venue.POST("/reservations", bookingLimiter, reservationHandler.Create)
			venue.POST("/reservations/:id/join", bookingLimiter, reservationHandler.Join)

			// Admin: everything that reshapes the venue.
			admin := venue.Group("/")
			admin.Use(middleware.AuthMiddleware(cfg))
			{
				admin.GET("/reservations", reservationHandler.List)
				admin.PUT("/reservations/:id", reservationHandler.Update)
				admin.DELETE("/reservations/:id", reservationHandler.Cancel)

				admin.POST("/time-slots", timeSlotHandler.Upsert)
				admin.PUT("/time-slots/:id", timeSlotHandler.Update)

				admin.GET("/settings", settingsHandler.Get)
				admin.PUT("/settings", settingsHandler.Update)

				admin.GET("/courts", courtHandler.List)
				admin.GET("/courts/:id", courtHandler.Get)
				admin.POST("/courts", courtHandler.Create)
				admin.PUT("/courts/:id", courtHandler.Update)
				admin.DELETE("/courts/:id", courtHandler.Delete)
				admin.POST("/courts/:id/photo", courtHandler.UploadPhoto)

				admin.GET("/coaches", coachHandler.List)
				admin.POST("/coaches", coachHandler.Create)
				admin.PUT("/coaches/:id", coachHandler.Update)
				admin.DELETE("/coaches/:id", coachHandler.Delete)

				admin.GET("/clinics", clinicHandler.List)
				admin.POST("/clinics", clinicHandler.Create)
				admin.PUT("/clinics/:id", clinicHandler.Update)
				admin.DELETE("/clinics/:id", clinicHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
