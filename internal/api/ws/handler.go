package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/GriffinCanCode/termweb/internal/domain/shell"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/logging"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/termweb/internal/shared/types"
	"github.com/GriffinCanCode/termweb/internal/shared/utils"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Frame types
const (
	TypeCommand = "command"
	TypePing    = "ping"
	TypePong    = "pong"
	TypeResult  = "result"
	TypeSystem  = "system"
	TypeError   = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the CORS middleware
	},
}

// Terminal is the shared session a stream drives.
type Terminal interface {
	Execute(ctx context.Context, line string) shell.Result
	Cwd() string
}

// Handler manages WebSocket connections
type Handler struct {
	terminal Terminal
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(terminal Terminal, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		terminal: terminal,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleConnection upgrades the request and runs commands from the client
// until it disconnects. Every connection shares the one session.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.For(c.Request.Context()).Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(utils.MaxJSONSize)

	connID := uuid.NewString()
	reqCtx := c.Request.Context()
	log := h.logger.For(reqCtx).With(zap.String("conn_id", connID))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}
	log.Info("stream connected")
	defer log.Info("stream closed")

	if err := h.send(conn, types.WSNotice{
		Type:    TypeSystem,
		Message: "Connected to termweb",
		Cwd:     h.terminal.Cwd(),
	}); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("stream read error", zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.record("in", "invalid")
			if err := h.sendError(conn, "", "invalid message"); err != nil {
				return
			}
			continue
		}
		h.record("in", msg.Type)

		if err := h.dispatch(reqCtx, conn, msg); err != nil {
			log.Warn("stream write error", zap.Error(err))
			return
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, conn *websocket.Conn, msg types.WSMessage) error {
	switch msg.Type {
	case TypeCommand:
		if err := utils.ValidateCommand(msg.Command); err != nil {
			return h.sendError(conn, msg.ID, err.Error())
		}
		res := h.terminal.Execute(ctx, msg.Command)
		return h.send(conn, types.WSResult{
			Type:            TypeResult,
			ID:              msg.ID,
			CommandResponse: res.Response(),
		})
	case TypePing:
		return h.send(conn, types.WSNotice{Type: TypePong, ID: msg.ID})
	default:
		return h.sendError(conn, msg.ID, "unknown message type")
	}
}

func (h *Handler) send(conn *websocket.Conn, frame interface{}) error {
	data, err := sonic.Marshal(frame)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	h.record("out", frameType(frame))
	return nil
}

func (h *Handler) sendError(conn *websocket.Conn, id, msg string) error {
	return h.send(conn, types.WSNotice{Type: TypeError, ID: id, Message: msg})
}

// record counts a frame. Unknown inbound types share one label.
func (h *Handler) record(direction, frame string) {
	if h.metrics == nil {
		return
	}
	switch frame {
	case TypeCommand, TypePing, TypePong, TypeResult, TypeSystem, TypeError, "invalid":
	default:
		frame = "other"
	}
	h.metrics.RecordWSMessage(direction, frame)
}

func frameType(frame interface{}) string {
	switch f := frame.(type) {
	case types.WSResult:
		return f.Type
	case types.WSNotice:
		return f.Type
	}
	return "other"
}
