package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zerobloat/shell/internal/domain/shell"
	"github.com/zerobloat/shell/internal/domain/shortcut"
	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/infrastructure/logging"
	"github.com/zerobloat/shell/internal/infrastructure/monitoring"
	"github.com/zerobloat/shell/internal/notify"
	"github.com/zerobloat/shell/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Message is an inbound shell command over the stream
type Message struct {
	Type      string                 `json:"type"`
	ID        string                 `json:"id,omitempty"`
	Title     string                 `json:"title,omitempty"`
	Icon      string                 `json:"icon,omitempty"`
	Component string                 `json:"component,omitempty"`
	Props     map[string]interface{} `json:"props,omitempty"`
	Geometry  *types.Geometry        `json:"geometry,omitempty"`
	X         *int                   `json:"x,omitempty"`
	Y         *int                   `json:"y,omitempty"`
	Width     int                    `json:"width,omitempty"`
	Height    int                    `json:"height,omitempty"`
}

type connection struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer
}

func (c *connection) send(data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(data)
}

// Handler streams shell state to connected frontends and accepts shell
// commands back. Every committed window or shortcut change fans out to all
// connections as a fresh snapshot.
type Handler struct {
	windows   *window.Manager
	shortcuts *shortcut.Registry
	taskbar   *shell.Taskbar
	menu      *shell.StartMenu
	metrics   *monitoring.Metrics
	logger    *logging.Logger

	mu    sync.RWMutex
	conns map[string]*connection
}

// NewHandler creates a WebSocket handler and subscribes it to the window
// and shortcut registries. The returned handler broadcasts for the life of
// the process; subscriptions are never torn down.
func NewHandler(
	windows *window.Manager,
	shortcuts *shortcut.Registry,
	taskbar *shell.Taskbar,
	menu *shell.StartMenu,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handler {
	h := &Handler{
		windows:   windows,
		shortcuts: shortcuts,
		taskbar:   taskbar,
		menu:      menu,
		metrics:   metrics,
		logger:    logger,
		conns:     make(map[string]*connection),
	}

	windows.Subscribe(func(snapshot window.Snapshot) {
		h.broadcast(snapshotMessage(snapshot))
	})
	shortcuts.Subscribe(func(list []types.Shortcut) {
		h.broadcast(map[string]interface{}{
			"type":      "shortcuts",
			"shortcuts": list,
			"timestamp": time.Now().Unix(),
		})
	})

	return h
}

// Post broadcasts a toast, letting the handler act as a notification sink
func (h *Handler) Post(message string, level notify.Level) {
	h.broadcast(map[string]interface{}{
		"type":      "toast",
		"message":   message,
		"level":     string(level),
		"timestamp": time.Now().Unix(),
	})
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	client := &connection{conn: conn}

	h.mu.Lock()
	h.conns[id] = client
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
	}

	defer func() {
		h.mu.Lock()
		delete(h.conns, id)
		h.mu.Unlock()
		if h.metrics != nil {
			h.metrics.WSConnections.Dec()
		}
		conn.Close()
	}()

	// New connections get the full state up front
	h.sendInitialState(client)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}
		h.dispatch(client, msg)
	}
}

// sendInitialState pushes the current snapshot and shortcut list to a
// freshly upgraded connection
func (h *Handler) sendInitialState(client *connection) {
	if err := client.send(snapshotMessage(h.windows.Snapshot())); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
		return
	}
	if err := client.send(map[string]interface{}{
		"type":      "shortcuts",
		"shortcuts": h.shortcuts.List(),
		"timestamp": time.Now().Unix(),
	}); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
	}
}

func (h *Handler) dispatch(client *connection, msg Message) {
	switch msg.Type {
	case "open":
		h.windows.Open(types.OpenRequest{
			ID:        msg.ID,
			Title:     msg.Title,
			Icon:      msg.Icon,
			Component: msg.Component,
			Props:     msg.Props,
			Geometry:  msg.Geometry,
		})
	case "close":
		h.windows.Close(msg.ID)
	case "focus":
		h.windows.Focus(msg.ID)
	case "minimize":
		h.windows.Minimize(msg.ID)
	case "minimize_all":
		h.windows.MinimizeAll()
	case "toggle_maximize":
		h.windows.ToggleMaximize(msg.ID)
	case "move":
		if msg.X != nil && msg.Y != nil {
			h.windows.Move(msg.ID, types.Position{X: *msg.X, Y: *msg.Y})
		}
	case "resize":
		var position *types.Position
		if msg.X != nil && msg.Y != nil {
			position = &types.Position{X: *msg.X, Y: *msg.Y}
		}
		h.windows.Resize(msg.ID, types.Size{Width: msg.Width, Height: msg.Height}, position)
	case "taskbar_click":
		h.taskbar.Click(msg.ID)
	case "launch":
		h.menu.Launch(msg.ID)
	case "ping":
		client.send(map[string]interface{}{"type": "pong"})
	default:
		client.send(map[string]interface{}{
			"type":    "error",
			"message": "unknown message type: " + msg.Type,
		})
	}
}

func (h *Handler) broadcast(data interface{}) {
	h.mu.RLock()
	clients := make([]*connection, 0, len(h.conns))
	for _, client := range h.conns {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.send(data); err != nil {
			h.logger.Debug("websocket write failed", zap.Error(err))
		}
	}
	if h.metrics != nil && len(clients) > 0 {
		h.metrics.RecordWSMessage("out", "broadcast")
	}
}

func snapshotMessage(snapshot window.Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"type":      "windows",
		"windows":   snapshot.Windows,
		"active_id": snapshot.ActiveID,
		"taskbar":   shell.ItemsFromSnapshot(snapshot),
		"timestamp": time.Now().Unix(),
	}
}
