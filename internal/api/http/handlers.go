package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerobloat/shell/internal/domain/shell"
	"github.com/zerobloat/shell/internal/domain/shortcut"
	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/guest"
	"github.com/zerobloat/shell/internal/infrastructure/logging"
	"github.com/zerobloat/shell/internal/infrastructure/monitoring"
	"github.com/zerobloat/shell/internal/notify"
	"github.com/zerobloat/shell/internal/render"
	"github.com/zerobloat/shell/internal/shared/types"
)

// Handlers contains HTTP handlers and their dependencies
type Handlers struct {
	windows   *window.Manager
	shortcuts *shortcut.Registry
	taskbar   *shell.Taskbar
	menu      *shell.StartMenu
	desktop   *shell.Desktop
	renderer  *render.Registry
	icons     *render.Icons
	guest     *guest.Client
	notifier  notify.Notifier
	translate shell.Translator
	metrics   *monitoring.Metrics
	logger    *logging.Logger
}

// NewHandlers creates handlers with dependencies
func NewHandlers(
	windows *window.Manager,
	shortcuts *shortcut.Registry,
	taskbar *shell.Taskbar,
	menu *shell.StartMenu,
	desktop *shell.Desktop,
	renderer *render.Registry,
	icons *render.Icons,
	guestClient *guest.Client,
	notifier notify.Notifier,
	translate shell.Translator,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		windows:   windows,
		shortcuts: shortcuts,
		taskbar:   taskbar,
		menu:      menu,
		desktop:   desktop,
		renderer:  renderer,
		icons:     icons,
		guest:     guestClient,
		notifier:  notifier,
		translate: translate,
		metrics:   metrics,
		logger:    logger,
	}
}

// Root returns service information
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "desktop-shell",
		"status":  "running",
	})
}

// Health returns service health
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status": "healthy",
		"uptime": h.metrics.Uptime().String(),
	}
	if h.guest != nil {
		resp["guest_breaker"] = h.guest.BreakerState().String()
	}
	c.JSON(http.StatusOK, resp)
}

// ListWindows returns the current window snapshot, bottom to top
func (h *Handlers) ListWindows(c *gin.Context) {
	snapshot := h.windows.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"windows":   snapshot.Windows,
		"active_id": snapshot.ActiveID,
		"stats":     h.windows.Stats(),
	})
}

type openWindowRequest struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title" binding:"required"`
	Icon      string                 `json:"icon"`
	Component string                 `json:"component" binding:"required"`
	Props     map[string]interface{} `json:"props"`
	Geometry  *types.Geometry        `json:"geometry"`
}

// OpenWindow opens a window, or refocuses it if the id is already open
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req openWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	win := h.windows.Open(types.OpenRequest{
		ID:        req.ID,
		Title:     req.Title,
		Icon:      req.Icon,
		Component: req.Component,
		Props:     req.Props,
		Geometry:  req.Geometry,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"window":  win,
	})
}

// CloseWindow closes a window; unknown ids are a no-op
func (h *Handlers) CloseWindow(c *gin.Context) {
	changed := h.windows.Close(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// FocusWindow raises a window to the top of the stack
func (h *Handlers) FocusWindow(c *gin.Context) {
	changed := h.windows.Focus(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// MinimizeWindow hides a window from the desktop
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	changed := h.windows.Minimize(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// MinimizeAll minimizes every window in one step
func (h *Handlers) MinimizeAll(c *gin.Context) {
	h.windows.MinimizeAll()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleMaximize maximizes a window or restores its saved geometry
func (h *Handlers) ToggleMaximize(c *gin.Context) {
	changed := h.windows.ToggleMaximize(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// MoveWindow repositions a window; ignored while maximized
func (h *Handlers) MoveWindow(c *gin.Context) {
	var req types.Position
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	changed := h.windows.Move(c.Param("id"), req)
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

type resizeWindowRequest struct {
	Width  int  `json:"width" binding:"required"`
	Height int  `json:"height" binding:"required"`
	X      *int `json:"x"`
	Y      *int `json:"y"`
}

// ResizeWindow resizes a window, optionally moving its origin in the same
// step; ignored while maximized
func (h *Handlers) ResizeWindow(c *gin.Context) {
	var req resizeWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	var position *types.Position
	if req.X != nil && req.Y != nil {
		position = &types.Position{X: *req.X, Y: *req.Y}
	}

	changed := h.windows.Resize(c.Param("id"), types.Size{Width: req.Width, Height: req.Height}, position)
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// GetTaskbar returns taskbar buttons in launch order
func (h *Handlers) GetTaskbar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.taskbar.Items()})
}

// ClickTaskbar toggles a taskbar button: minimize when active, focus otherwise
func (h *Handlers) ClickTaskbar(c *gin.Context) {
	h.taskbar.Click(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListShortcuts returns registered shortcuts in insertion order
func (h *Handlers) ListShortcuts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shortcuts": h.shortcuts.List()})
}

// AddShortcut registers a launch shortcut
func (h *Handlers) AddShortcut(c *gin.Context) {
	var req types.Shortcut
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	if !h.shortcuts.Add(req) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "shortcut id missing or already registered",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "shortcut": req})
}

// RemoveShortcut unregisters a shortcut
func (h *Handlers) RemoveShortcut(c *gin.Context) {
	changed := h.shortcuts.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": changed})
}

// GetStartMenu returns localized start menu entries, filtered by ?q=
func (h *Handlers) GetStartMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.menu.Entries(c.Query("q")),
	})
}

// LaunchFromStartMenu opens the window behind a start menu entry
func (h *Handlers) LaunchFromStartMenu(c *gin.Context) {
	win, ok := h.menu.Launch(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "unknown shortcut",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "window": win})
}

// GetDesktop returns desktop icons
func (h *Handlers) GetDesktop(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": h.desktop.Icons()})
}

// OpenFromDesktop opens the window behind a desktop icon
func (h *Handlers) OpenFromDesktop(c *gin.Context) {
	if !h.desktop.Open(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "unknown shortcut",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWindowView resolves a window's component to a renderable view
func (h *Handlers) GetWindowView(c *gin.Context) {
	win, ok := h.windows.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "unknown window",
		})
		return
	}

	view := h.renderer.Resolve(win.Component, win.Props)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"view":    view,
		"icon":    h.icons.Resolve(win.Icon),
	})
}

// ListViewKinds returns the registered renderer component kinds
func (h *Handlers) ListViewKinds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kinds": h.renderer.Kinds()})
}
