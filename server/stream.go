package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/algoviz/engine"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleStream handles GET /api/stream/:family/:algorithm.
//
// The request is validated before the upgrade, so bad input still gets a
// plain 400 JSON response. After the upgrade each step is sent as its own
// text message, followed by one StreamDone message and a normal close.
func (h *Handlers) HandleStream(c *gin.Context) {
	logger := requestLogger(c, h.logger, "HandleStream")

	family, ok := engine.ParseFamily(c.Param("family"))
	if !ok {
		h.fail(c, logger, family, engine.ErrUnknownAlgorithm)
		return
	}
	variant := c.Param("algorithm")

	res, err := h.trace(family, variant, c.GetQuery)
	if err != nil {
		h.fail(c, logger, family, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	for i, s := range res.Steps {
		if err := sendJSON(ws, s); err != nil {
			logStreamError(logger, err, "step", i)
			return
		}
	}
	if err := sendJSON(ws, StreamDone{Done: true, Steps: len(res.Steps), Complexity: res.Complexity}); err != nil {
		logStreamError(logger, err, "step", len(res.Steps))
		return
	}

	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	logger.Debug("stream complete", "family", family, "variant", variant, "steps", len(res.Steps))
}

func sendJSON(ws *websocket.Conn, v any) error {
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteJSON(v)
}

func logStreamError(logger *slog.Logger, err error, args ...any) {
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		logger.Warn("stream write failed", append(args, "error", err)...)
		return
	}
	logger.Debug("stream closed by client", append(args, "error", err)...)
}

