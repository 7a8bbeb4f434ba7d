package routes

import (
	"github.com/delvaty/construccion-easy/internal/api/handlers"
	"github.com/delvaty/construccion-easy/internal/api/middleware"
	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/config"
	"github.com/delvaty/construccion-easy/internal/cron"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/storage"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, store storage.ObjectStore, catalog *config.StageCatalog) {
	// init
	hub := realtime.NewHub()
	services := application.New(repos, store, hub)
	h := handlers.New(services, hub, catalog)
	authMiddleware := middleware.NewAuth(repos)

	// Start background tasks
	cron.StartCleanupTask(services.Audit)
	cron.StartOverdueSweep(services.Payment)

	// public
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.POST("/forgot-password", h.User.ForgotPassword)
	r.GET("/catalog/stages", h.Catalog.GetStages)
	r.GET("/catalog/stages/:type", h.Catalog.GetProcessStages)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/events", h.Events.Stream)

		intake := auth.Group("/intake/sessions")
		{
			intake.POST("", h.Intake.StartSession)
			intake.GET("/:id", h.Intake.GetSession)
			intake.PUT("/:id/process", h.Intake.SelectProcess)
			intake.PUT("/:id/record", h.Intake.UpdateRecord)
			intake.POST("/:id/entries", h.Intake.AddEntry)
			intake.PUT("/:id/entries", h.Intake.UpdateEntry)
			intake.DELETE("/:id/entries", h.Intake.RemoveEntry)
			intake.POST("/:id/next", h.Intake.Next)
			intake.POST("/:id/previous", h.Intake.Previous)
			intake.POST("/:id/submit", h.Intake.Submit)
		}

		clients := auth.Group("/clients")
		{
			clients.GET("", authMiddleware.Admin(), h.Client.GetClients)
			clients.GET("/mine", h.Client.GetMyClients)
			clients.GET("/:id", authMiddleware.ClientOwnerOrAdmin("id"), h.Client.GetClientByID)
			clients.GET("/:id/detail", authMiddleware.ClientOwnerOrAdmin("id"), h.Client.GetClientDetail)
			clients.PUT("/:id", authMiddleware.Admin(), h.Client.UpdateClient)
			clients.DELETE("/:id", authMiddleware.Admin(), h.Client.DeleteClient)

			clients.GET("/:id/documents", authMiddleware.ClientOwnerOrAdmin("id"), h.Document.ListClientDocuments)
			clients.POST("/:id/documents", authMiddleware.ClientOwnerOrAdmin("id"), h.Document.Upload)
			clients.GET("/:id/payments", authMiddleware.ClientOwnerOrAdmin("id"), h.Payment.ListClientPayments)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("/:id/url", h.Document.DownloadURL)
			documents.PUT("/:id/review", authMiddleware.Admin(), h.Document.Review)
		}

		payments := auth.Group("/payments")
		{
			payments.GET("", authMiddleware.Admin(), h.Payment.GetPayments)
			payments.POST("", authMiddleware.Admin(), h.Payment.CreatePayment)
			payments.GET("/:id", h.Payment.GetPaymentByID)
			payments.PUT("/:id", authMiddleware.Admin(), h.Payment.UpdatePayment)
			payments.PUT("/:id/paid", authMiddleware.Admin(), h.Payment.MarkPaid)
			payments.DELETE("/:id", authMiddleware.Admin(), h.Payment.DeletePayment)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("", h.Ticket.GetTickets)
			tickets.GET("/:id", h.Ticket.GetTicketByID)
			tickets.PUT("/:id/status", authMiddleware.Admin(), h.Ticket.UpdateTicketStatus)
			tickets.POST("/:id/messages", h.Ticket.AddMessage)
			tickets.GET("/:id/messages", h.Ticket.ListMessages)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), h.Audit.QueryAuditLogs)
		}

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), h.User.GetUsers)
			users.GET("/paging", authMiddleware.Admin(), h.User.ListUsersPaging)
			users.GET("/:id", authMiddleware.UserOrAdmin(), h.User.GetUserByID)
			users.PUT("/:id", authMiddleware.UserOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
		}
	}
}
