package server

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/zerobloat/shell/internal/api/http"
	"github.com/zerobloat/shell/internal/api/middleware"
	"github.com/zerobloat/shell/internal/api/ws"
	"github.com/zerobloat/shell/internal/domain/shell"
	"github.com/zerobloat/shell/internal/domain/shortcut"
	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/guest"
	"github.com/zerobloat/shell/internal/i18n"
	"github.com/zerobloat/shell/internal/infrastructure/config"
	"github.com/zerobloat/shell/internal/infrastructure/logging"
	"github.com/zerobloat/shell/internal/infrastructure/monitoring"
	"github.com/zerobloat/shell/internal/notify"
	"github.com/zerobloat/shell/internal/render"
	"github.com/zerobloat/shell/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	logger    *logging.Logger
	windows   *window.Manager
	shortcuts *shortcut.Registry
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, err
	}

	metrics := monitoring.NewMetrics()

	// Guest backend client (optional)
	var guestClient *guest.Client
	if cfg.Guest.Enabled {
		guestClient = guest.New(cfg.Guest.Address)
		logger.Info("guest backend configured", zap.String("address", cfg.Guest.Address))
	} else {
		logger.Info("guest backend disabled")
	}

	// Localization
	translator := i18n.NewTranslator()
	localePath := cfg.Shell.LocalePath
	if localePath == "" && cfg.Shell.Locale != "" {
		localePath = filepath.Join("configs", "locales", cfg.Shell.Locale+".yaml")
	}
	if localePath != "" {
		if err := translator.LoadFile(localePath); err != nil {
			logger.Warn("failed to load locale catalog",
				zap.String("path", localePath), zap.Error(err))
		}
	}

	// Core registries
	windows := window.NewManager().
		WithDefaults(types.Geometry{
			Position: types.Position{X: cfg.Shell.WindowX, Y: cfg.Shell.WindowY},
			Size:     types.Size{Width: cfg.Shell.WindowWidth, Height: cfg.Shell.WindowHeight},
		}).
		WithMetrics(metrics)
	shortcuts := shortcut.NewRegistry()
	shortcuts.Subscribe(func(list []types.Shortcut) {
		metrics.SetShortcuts(len(list))
	})
	taskbar := shell.NewTaskbar(windows)
	menu := shell.NewStartMenu(shortcuts, windows, translator)
	desktop := shell.NewDesktop(shortcuts, menu, translator)

	// Seed launch shortcuts: built-ins first, then the file list on top so
	// seeded entries follow the system icons in grid order
	seeder := shortcut.NewSeeder(shortcuts, cfg.Shell.SeedPath)
	seeder.SeedDefaults()
	if err := seeder.SeedShortcuts(); err != nil {
		logger.Warn("failed to seed shortcuts", zap.Error(err))
	}

	// Renderer registry
	renderer := render.NewRegistry()
	registerRenderers(renderer, logger)
	icons := render.NewIcons()

	// Streaming and notifications
	wsHandler := ws.NewHandler(windows, shortcuts, taskbar, menu, metrics, logger)
	notifier := notify.Multi{notify.NewLogNotifier(logger.Logger), wsHandler}

	// Router and middleware
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(
		windows, shortcuts, taskbar, menu, desktop,
		renderer, icons, guestClient, notifier, translator, metrics, logger,
	)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Window management
	router.GET("/windows", handlers.ListWindows)
	router.POST("/windows", handlers.OpenWindow)
	router.DELETE("/windows/:id", handlers.CloseWindow)
	router.POST("/windows/:id/focus", handlers.FocusWindow)
	router.POST("/windows/:id/minimize", handlers.MinimizeWindow)
	router.POST("/windows/:id/maximize", handlers.ToggleMaximize)
	router.POST("/windows/:id/move", handlers.MoveWindow)
	router.POST("/windows/:id/resize", handlers.ResizeWindow)
	router.GET("/windows/:id/view", handlers.GetWindowView)
	// own path: a static segment cannot share /windows/ with the :id routes
	router.POST("/shell/minimize-all", handlers.MinimizeAll)

	// Shell projections
	router.GET("/taskbar", handlers.GetTaskbar)
	router.POST("/taskbar/:id/click", handlers.ClickTaskbar)
	router.GET("/startmenu", handlers.GetStartMenu)
	router.POST("/startmenu/:id/launch", handlers.LaunchFromStartMenu)
	router.GET("/desktop", handlers.GetDesktop)
	router.POST("/desktop/:id/open", handlers.OpenFromDesktop)

	// Shortcuts
	router.GET("/shortcuts", handlers.ListShortcuts)
	router.POST("/shortcuts", handlers.AddShortcut)
	router.DELETE("/shortcuts/:id", handlers.RemoveShortcut)

	// Renderer
	router.GET("/views", handlers.ListViewKinds)

	// Guest backend proxy
	router.POST("/guest/start", handlers.StartGuest)
	router.POST("/guest/stop", handlers.StopGuest)
	router.GET("/guest/status", handlers.GuestStatus)
	router.GET("/guest/drives", handlers.ListDrives)
	router.POST("/guest/folders", handlers.ListFolders)
	router.POST("/guest/mount", handlers.MountGuest)
	router.POST("/guest/unmount", handlers.UnmountGuest)
	router.GET("/guest/apps", handlers.ListGuestApps)
	router.POST("/guest/delete", handlers.DeleteGuestApps)
	router.POST("/guest/detect", handlers.DetectEmulator)
	router.GET("/guest/logs", handlers.GuestLogs)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router:    router,
		logger:    logger,
		windows:   windows,
		shortcuts: shortcuts,
	}, nil
}

// Run starts the server
func (s *Server) Run(addr string) error {
	s.logger.Info("starting shell backend", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close cleans up resources
func (s *Server) Close() error {
	return s.logger.Sync()
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRenderers installs the built-in window content factories. Each
// kind mirrors a frontend component; unknown kinds degrade to the fallback
// placeholder.
func registerRenderers(renderer *render.Registry, logger *logging.Logger) {
	kinds := []string{"ThisPC", "FileExplorer", "AppCleaner", "Settings"}
	for _, kind := range kinds {
		kind := kind
		err := renderer.Register(kind, func(props map[string]interface{}) render.View {
			return render.View{Kind: kind, Props: props}
		})
		if err != nil {
			logger.Warn("renderer registration failed", zap.String("kind", kind), zap.Error(err))
		}
	}
}
