package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/handler"
	"github.com/edukit/edu-console-api/internal/middleware"
	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/pkg/config"
	"github.com/edukit/edu-console-api/pkg/logger"
	corsmiddleware "github.com/edukit/edu-console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edukit/edu-console-api/pkg/middleware/requestid"
)

// Handlers bundles everything the route table mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Teachers   *handler.TeacherHandler
	Students   *handler.StudentHandler
	Courses    *handler.CourseHandler
	Grades     *handler.GradeHandler
	Assignment *handler.AssignmentHandler
	Dashboard  *handler.DashboardHandler
	Analytics  *handler.AnalyticsHandler
	Settings   *handler.SettingsHandler
	Exports    *handler.ExportHandler
}

// New assembles the gin engine with the full route table. Sections gate by
// role: /admin for administrators, /teacher for staff, /student for
// enrollees; the catalogue reads for any signed-in user and writes for staff
// and administrators.
func New(cfg *config.Config, logr *zap.Logger, authSvc *service.AuthService, metricsSvc *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled && metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}
	r.Use(middleware.Session(authSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Metrics.Enabled && metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public entry points.
	r.POST("/signin", h.Auth.SignIn)
	r.POST("/signup", h.Auth.SignUp)
	r.POST("/signout", h.Auth.SignOut)
	r.GET("/session", h.Auth.Session)
	r.GET("/unauthorized", handler.Unauthorized)

	// Any signed-in user.
	signedIn := r.Group("", middleware.RequireSignIn())
	{
		signedIn.GET("/settings", h.Settings.Get)
		signedIn.PUT("/settings", h.Settings.Update)
		signedIn.PUT("/profile", h.Users.UpdateProfile)
		signedIn.GET("/courses", h.Courses.List)
		signedIn.GET("/courses/:id", h.Courses.Get)
	}

	// Catalogue writes are shared between staff and administrators.
	catalogue := r.Group("/courses", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
	{
		catalogue.POST("", h.Courses.Create)
		catalogue.PUT("/:id", h.Courses.Update)
		catalogue.PATCH("/:id/status", h.Courses.ToggleStatus)
		catalogue.DELETE("/:id", h.Courses.Delete)
	}

	admin := r.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard.Admin)
		admin.GET("/users", h.Users.List)
		admin.DELETE("/users/:id", h.Users.Delete)

		admin.GET("/teachers", h.Teachers.List)
		admin.GET("/teachers/:id", h.Teachers.Get)
		admin.POST("/teachers", h.Teachers.Create)
		admin.PUT("/teachers/:id", h.Teachers.Update)
		admin.PATCH("/teachers/:id/status", h.Teachers.ToggleStatus)
		admin.DELETE("/teachers/:id", h.Teachers.Delete)

		admin.GET("/students", h.Students.List)
		admin.GET("/students/:id", h.Students.Get)
		admin.POST("/students", h.Students.Create)
		admin.PUT("/students/:id", h.Students.Update)
		admin.PATCH("/students/:id/status", h.Students.ToggleStatus)
		admin.DELETE("/students/:id", h.Students.Delete)

		admin.GET("/analytics/overview", h.Analytics.Overview)
		admin.GET("/analytics/courses", h.Analytics.CourseDistribution)
		admin.GET("/analytics/grades", h.Analytics.GradeBuckets)
		admin.GET("/analytics/system", h.Analytics.System)

		if cfg.Exports.Enabled && h.Exports != nil {
			admin.POST("/exports/grades", h.Exports.GradeReport)
			admin.GET("/exports/:filename", h.Exports.Download)
			admin.DELETE("/exports/:filename", h.Exports.Delete)
		}
	}

	teacher := r.Group("/teacher", middleware.RequireRole(models.RoleTeacher))
	{
		teacher.GET("/dashboard", h.Dashboard.Teacher)
		teacher.GET("/students", h.Students.List)

		teacher.GET("/grades", h.Grades.List)
		teacher.POST("/grades", h.Grades.Create)
		teacher.PUT("/grades/:id", h.Grades.Update)
		teacher.DELETE("/grades/:id", h.Grades.Delete)

		teacher.GET("/assignments", h.Assignment.List)
		teacher.GET("/assignments/:id", h.Assignment.Get)
		teacher.POST("/assignments", h.Assignment.Create)
		teacher.PATCH("/assignments/:id/publish", h.Assignment.Publish)
		teacher.GET("/assignments/:id/submissions", h.Assignment.Submissions)
		teacher.DELETE("/assignments/:id", h.Assignment.Delete)
	}

	student := r.Group("/student", middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/dashboard", h.Dashboard.Student)
		student.GET("/grades", h.Grades.Mine)
		student.GET("/assignments", h.Assignment.Open)
		student.POST("/assignments/:id/submit", h.Assignment.Submit)
	}

	r.NoRoute(handler.NotFound)

	return r
}
