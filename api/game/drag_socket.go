package gameapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/service"
	service_i "github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Websocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// drag upgrades the request and streams pointer frames into the round.
func (rc *RoundController) drag(ctx *gin.Context) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		rc.logger.Warning(fmt.Sprintf("Upgrading drag socket of round %s: %v", round.ID, err))
		return
	}

	s := &dragSession{
		round:  round,
		store:  rc.store,
		conn:   conn,
		send:   make(chan DragEvent, sendBuffer),
		done:   make(chan struct{}),
		logger: rc.logger,
	}
	rc.logger.Info(fmt.Sprintf("Drag socket opened for round %s", round.ID))
	go s.writePump()
	s.readPump()
	rc.logger.Info(fmt.Sprintf("Drag socket closed for round %s", round.ID))
}

// dragSession relays the frames of one websocket connection to a round.
type dragSession struct {
	round  *service.Round
	store  i.RoundStore
	conn   *websocket.Conn
	send   chan DragEvent
	done   chan struct{} // Closed when writePump exits.
	logger service_i.Logger
}

// readPump reads pointer frames until the connection fails or closes.
func (s *dragSession) readPump() {
	defer close(s.send)

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Warning(fmt.Sprintf("Setting read deadline: %v", err))
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame DragFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error(fmt.Sprintf("Drag socket of round %s: %v", s.round.ID, err))
			}
			return
		}

		// A removed round no longer takes input; the session ends with a last error event.
		if _, err := s.store.ByID(s.round.ID); err != nil {
			s.deliver(DragEvent{Error: "round not found"})
			return
		}
		if !s.deliver(s.handle(frame)) {
			return
		}
	}
}

// deliver queues an event for writePump. It reports false once writePump is gone.
func (s *dragSession) deliver(event DragEvent) bool {
	select {
	case s.send <- event:
		return true
	case <-s.done:
		return false
	}
}

// handle applies one frame to the round.
func (s *dragSession) handle(frame DragFrame) DragEvent {
	var action game.PointerAction
	switch frame.Type {
	case "down":
		action = game.PointerDown
	case "move":
		action = game.PointerMove
	default:
		s.round.Lock()
		defer s.round.Unlock()
		return DragEvent{
			State:  s.round.State(),
			Player: s.round.Player(),
			Error:  fmt.Sprintf("unknown frame type %q", frame.Type),
		}
	}

	s.round.Lock()
	defer s.round.Unlock()
	signal, player, accepted := s.round.Pointer(action, frame.X, frame.Y)
	if signal != game.Continue {
		s.logger.Debug(fmt.Sprintf("Round %s: drag ended with %s", s.round.ID, signal))
	}
	return DragEvent{
		Accepted: accepted,
		Signal:   signal,
		State:    s.round.State(),
		Player:   player,
	}
}

// writePump sends events to the client and keeps the connection alive with pings.
func (s *dragSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(s.done)
		_ = s.conn.Close()
	}()

	for {
		select {
		case event, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteJSON(event); err != nil {
				s.logger.Debug(fmt.Sprintf("Writing drag event: %v", err))
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
