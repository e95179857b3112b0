package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	"github.com/BruksfildServices01/client-tracker/internal/config"
	"github.com/BruksfildServices01/client-tracker/internal/handlers"
	infraRepo "github.com/BruksfildServices01/client-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/client-tracker/internal/middleware"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/internal/timezone"
	ucAuth "github.com/BruksfildServices01/client-tracker/internal/usecase/auth"
	ucClient "github.com/BruksfildServices01/client-tracker/internal/usecase/client"
	ucUser "github.com/BruksfildServices01/client-tracker/internal/usecase/user"
	"github.com/BruksfildServices01/client-tracker/internal/web"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

// RegisterRoutes monta todo o app. revoker pode ser nil (sem Redis).
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, revoker session.Revoker) error {

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.Get()))
	r.Use(middleware.CSRF(cfg.AllowedOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	if revoker == nil {
		revoker = session.NopRevoker{}
	}
	tokens := session.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	cookies := session.NewCookieHelper(cfg.CookieSecure)

	userRepo := infraRepo.NewUserGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)

	auditLogger := audit.New(db)

	// ======================================================
	// 🧠 USE CASES — AUTH
	// ======================================================
	loginUC := ucAuth.NewLogin(userRepo, tokens)
	logoutUC := ucAuth.NewLogout(tokens, revoker)
	authenticateUC := ucAuth.NewAuthenticate(userRepo, tokens, revoker)

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	listClientsUC := ucClient.NewListClients(clientRepo, loc)
	getClientUC := ucClient.NewGetClient(clientRepo)
	createClientUC := ucClient.NewCreateClient(clientRepo, auditLogger, loc)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditLogger, loc)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditLogger)
	exportClientsUC := ucClient.NewExportClients(clientRepo)

	// ======================================================
	// 🧠 USE CASES — USERS
	// ======================================================
	listUsersUC := ucUser.NewListUsers(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)
	createUserUC := ucUser.NewCreateUser(userRepo, auditLogger)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditLogger)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditLogger)
	bootstrapAdminUC := ucUser.NewBootstrapAdmin(userRepo, auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, authenticateUC, cookies)

	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		getClientUC,
		createClientUC,
		updateClientUC,
		deleteClientUC,
		loc,
	)

	exportHandler := handlers.NewExportHandler(exportClientsUC, loc)

	userHandler := handlers.NewUserHandler(
		listUsersUC,
		getUserUC,
		createUserUC,
		updateUserUC,
		deleteUserUC,
	)

	bootstrapHandler := handlers.NewBootstrapHandler(bootstrapAdminUC)
	healthHandler := handlers.NewHealthHandler(db)

	// ======================================================
	// 🌐 ROTAS PÚBLICAS
	// ======================================================
	r.GET("/", authHandler.Home)
	r.GET(middleware.LoginPath, authHandler.LoginPage)
	r.POST(middleware.LoginPath, authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/create_admin", bootstrapHandler.CreateAdmin)

	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🔐 ROTAS COM SESSÃO
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.RequireSession(authenticateUC, cookies))
	{
		secured.GET("/list", clientHandler.List)

		secured.GET("/add", clientHandler.AddPage)
		secured.POST("/add", clientHandler.Add)

		secured.GET("/edit/:id", clientHandler.EditPage)
		secured.POST("/edit/:id", clientHandler.Edit)

		secured.GET("/delete/:id", clientHandler.Delete)

		secured.GET("/export_csv", exportHandler.CSV)
		secured.GET("/export_excel", exportHandler.Excel)

		// ------------------------------
		// 👥 FUNCIONÁRIOS (ADMIN)
		// ------------------------------
		users := secured.Group("/users")
		users.Use(middleware.RequireAdmin())
		{
			users.GET("", userHandler.List)

			users.GET("/add", userHandler.AddPage)
			users.POST("/add", userHandler.Add)

			users.GET("/edit/:id", userHandler.EditPage)
			users.POST("/edit/:id", userHandler.Edit)

			users.GET("/delete/:id", userHandler.Delete)
		}
	}

	return nil
}
