// Package http provides the websocket transport for live sessions
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"time"

	"honest/internal/modkit/httpkit"
	"honest/internal/platform/logger"
	pnet "honest/internal/platform/net"
	"honest/internal/services/session/domain"
	svc "honest/internal/services/session/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second

	// outBuffer bounds pending pushes per connection, slow clients drop updates
	outBuffer = 64

	maxMessageBytes = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// cross-origin policy is enforced by the CORS layer on the REST surface,
	// the ws endpoint accepts any origin
	CheckOrigin: func(*stdhttp.Request) bool { return true },
}

// Register mounts the session websocket endpoint at path
func Register(r httpkit.Router, path string, mgr *svc.Manager) {
	h := &handler{mgr: mgr, log: *logger.Named("session.ws")}
	r.Get(path, h.serve)
}

type handler struct {
	mgr *svc.Manager
	log logger.Logger
}

type conn struct {
	ws   *websocket.Conn
	out  chan domain.Outbound
	done chan struct{}
	log  logger.Logger
}

func (h *handler) serve(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("request_id", pnet.RequestID(r.Context())).Msg("upgrade failed")
		return
	}

	c := &conn{
		ws:   ws,
		out:  make(chan domain.Outbound, outBuffer),
		done: make(chan struct{}),
		log:  h.log,
	}
	sess := h.mgr.Open(c.emit)

	// greet with the current cinnamon list so the client can render settings
	c.emit(domain.Outbound{Op: domain.OpCinnamonWords, Words: sess.CinnamonWords()})

	go c.writePump()
	c.readPump(h.mgr, sess)
}

// emit queues a push, dropping it when the client cannot keep up or is gone
func (c *conn) emit(o domain.Outbound) {
	select {
	case <-c.done:
	case c.out <- o:
	default:
		c.log.Warn().Str("op", o.Op).Msg("client too slow, update dropped")
	}
}

func (c *conn) readPump(mgr *svc.Manager, sess *svc.Session) {
	defer func() {
		mgr.Close(sess)
		close(c.done)
	}()

	c.ws.SetReadLimit(maxMessageBytes)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn().Err(err).Msg("read failed")
			}
			return
		}
		var in domain.Inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			c.log.Warn().Err(err).Msg("bad message")
			continue
		}
		dispatch(sess, in)
	}
}

func dispatch(sess *svc.Session, in domain.Inbound) {
	switch in.Op {
	case domain.OpTextChanged:
		sess.TextChanged(in.Text)
	case domain.OpSelectionChanged:
		sess.SelectionChanged(in.Text)
	case domain.OpSetCheck:
		if in.Name != "" && in.Enabled != nil {
			sess.SetCheckEnabled(in.Name, *in.Enabled)
		}
	case domain.OpAddCinnamon:
		if in.Word != "" {
			sess.AddCinnamonWord(in.Word)
		}
	case domain.OpRemoveCinnamon:
		if in.Word != "" {
			sess.RemoveCinnamonWord(in.Word)
		}
	case domain.OpIgnore:
		if in.Index != nil {
			sess.Ignore(*in.Index)
		}
	case domain.OpShow:
		if in.Index != nil {
			sess.Show(*in.Index)
		}
	case domain.OpNext:
		sess.Next()
	case domain.OpPrevious:
		sess.Previous()
	case domain.OpRefresh:
		sess.Refresh()
	case domain.OpToggle:
		if in.Enabled != nil {
			sess.Toggle(*in.Enabled)
		}
	}
	// unknown ops are ignored, mirroring the configuration policy
}

func (c *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case o := <-c.out:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(o); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
