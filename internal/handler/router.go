package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/handler/api"
	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Cliente  *api.ClienteHandler
	Turno    *api.TurnoHandler
	Cajero   *api.CajeroHandler
	Catalogo *api.CatalogoHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Self-service registration needs no session
		addRoutes(apiGroup.Group("/clientes"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Cliente.Registrar},
		})

		turnos := apiGroup.Group("/turnos")
		turnos.Use(authMiddleware.RequireAuth())
		{
			addRoutes(turnos, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Turno.Solicitar},
				{Method: http.MethodGet, Path: "/mi-turno", Handler: h.Turno.MiTurno},
				{Method: http.MethodGet, Path: "/mi-turno/stream", Handler: h.Turno.Stream},
				{Method: http.MethodGet, Path: "/cola", Handler: h.Turno.Cola},
				{Method: http.MethodPost, Path: "/:id/cancelar", Handler: h.Turno.Cancelar},
			})
		}

		catalogo := apiGroup.Group("")
		catalogo.Use(authMiddleware.RequireAuth())
		{
			addRoutes(catalogo, []route{
				{Method: http.MethodGet, Path: "/servicios", Handler: h.Catalogo.Servicios},
				{Method: http.MethodGet, Path: "/productos", Handler: h.Catalogo.Productos},
				{Method: http.MethodGet, Path: "/cajas", Handler: h.Catalogo.Cajas},
			})
		}

		cajero := apiGroup.Group("/cajero")
		cajero.Use(authMiddleware.RequireAuth())
		cajero.Use(authMiddleware.RequireRolAtLeast(usuario.RolCajero))
		{
			addRoutes(cajero, []route{
				{Method: http.MethodPost, Path: "/facturas", Handler: h.Cajero.CrearFactura},
				{Method: http.MethodGet, Path: "/facturas", Handler: h.Cajero.FacturasPorDia},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRolAtLeast(usuario.RolAdministrador))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/usuarios", Handler: h.Admin.ListarUsuarios},
				{Method: http.MethodPost, Path: "/usuarios", Handler: h.Admin.CrearUsuario},
				{Method: http.MethodPut, Path: "/usuarios/:id", Handler: h.Admin.ActualizarUsuario},
				{Method: http.MethodDelete, Path: "/usuarios/:id", Handler: h.Admin.EliminarUsuario},

				{Method: http.MethodPost, Path: "/productos", Handler: h.Admin.CrearProducto},
				{Method: http.MethodPatch, Path: "/productos/:id", Handler: h.Admin.ActualizarProducto},
				{Method: http.MethodDelete, Path: "/productos/:id", Handler: h.Admin.EliminarProducto},

				{Method: http.MethodPost, Path: "/servicios", Handler: h.Admin.CrearServicio},
				{Method: http.MethodPut, Path: "/servicios/:id", Handler: h.Admin.ActualizarServicio},
				{Method: http.MethodDelete, Path: "/servicios/:id", Handler: h.Admin.EliminarServicio},

				{Method: http.MethodPost, Path: "/cajas", Handler: h.Admin.CrearCaja},
				{Method: http.MethodPut, Path: "/cajas/:id", Handler: h.Admin.ActualizarCaja},
				{Method: http.MethodDelete, Path: "/cajas/:id", Handler: h.Admin.EliminarCaja},

				{Method: http.MethodGet, Path: "/estadisticas", Handler: h.Admin.Estadisticas},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
