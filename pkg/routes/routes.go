package pkg

import (
	"context"
	"log"
	"net/http"
	"os"

	"JainPathshala/internal/announcement"
	"JainPathshala/internal/attendance"
	"JainPathshala/internal/auth"
	"JainPathshala/internal/config"
	"JainPathshala/internal/gatha"
	"JainPathshala/internal/notification"
	"JainPathshala/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewExpoConfig),
	fx.Provide(config.NewPushService),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(NewAuthService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(notification.NewRepository),
	fx.Provide(NewNotificationService),
	fx.Provide(notification.NewHandler),
	fx.Provide(notification.NewScheduler),
	fx.Provide(attendance.NewRepository),
	fx.Provide(NewAttendanceService),
	fx.Provide(attendance.NewHandler),
	fx.Provide(gatha.NewRepository),
	fx.Provide(NewGathaService),
	fx.Provide(gatha.NewHandler),
	fx.Provide(announcement.NewRepository),
	fx.Provide(NewAnnouncementService),
	fx.Provide(announcement.NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(StartScheduler),
)

// Constructors below bind the Mongo repositories to the interface each
// service accepts, so tests can substitute in-memory stores.

func NewAuthService(repo *auth.UserRepository) *auth.Service {
	return auth.NewService(repo)
}

func NewNotificationService(repo *notification.Repository, users *auth.UserRepository, push *config.PushService) *notification.Service {
	return notification.NewService(repo, users, push)
}

func NewAttendanceService(repo *attendance.Repository, notifier *notification.Service) *attendance.Service {
	return attendance.NewService(repo, notifier)
}

func NewGathaService(repo *gatha.Repository, notifier *notification.Service) *gatha.Service {
	return gatha.NewService(repo, notifier)
}

func NewAnnouncementService(repo *announcement.Repository, notifier *notification.Service) *announcement.Service {
	return announcement.NewService(repo, notifier)
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Server running on http://localhost:" + port)
			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func StartScheduler(lc fx.Lifecycle, scheduler *notification.Scheduler) {
	scheduler.StartScheduler(lc)
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	attendanceHandler *attendance.Handler,
	gathaHandler *gatha.Handler,
	announcementHandler *announcement.Handler,
	notificationHandler *notification.Handler,
) {
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.Use(middleware.CasbinMiddleware)

	protected.GET("/session", authHandler.Session)
	protected.POST("/session/push-token", authHandler.RegisterPushToken)

	protected.GET("/attendance", attendanceHandler.Overview)
	protected.POST("/attendance", attendanceHandler.MarkToday)
	protected.GET("/attendance/requests", attendanceHandler.PendingReviews)
	protected.POST("/attendance/requests/:id/approve", attendanceHandler.Approve)
	protected.POST("/attendance/requests/:id/reject", attendanceHandler.Reject)

	protected.GET("/students", authHandler.Students)
	protected.GET("/students/:id", authHandler.Student)
	protected.GET("/students/:id/attendance", attendanceHandler.StudentOverview)
	protected.GET("/students/:id/gathas", gathaHandler.ListStudent)

	protected.GET("/gathas", gathaHandler.List)
	protected.POST("/gathas", gathaHandler.RecordCompletion)

	protected.GET("/announcements", announcementHandler.List)
	protected.POST("/announcements", announcementHandler.Create)

	protected.GET("/notifications", notificationHandler.List)
	protected.POST("/notifications", notificationHandler.Send)
	protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
}
