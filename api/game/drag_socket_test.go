package gameapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragSocket(t *testing.T) {
	engine, _ := newTestEngine(t)
	round := createRound(t, engine)

	server := httptest.NewServer(engine)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/rounds/" + round.ID + "/drag"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	exchange := func(frame DragFrame) DragEvent {
		deadline := time.Now().Add(5 * time.Second)
		require.NoError(t, conn.SetWriteDeadline(deadline))
		require.NoError(t, conn.SetReadDeadline(deadline))
		require.NoError(t, conn.WriteJSON(frame))
		var event DragEvent
		require.NoError(t, conn.ReadJSON(&event))
		return event
	}

	cx, cy := round.Start.Center()
	px := cx + float64(round.Offset.X)
	py := cy + float64(round.Offset.Y)

	t.Run("Unknown frame type", func(t *testing.T) {
		event := exchange(DragFrame{Type: "hover", X: px, Y: py})
		assert.False(t, event.Accepted)
		assert.NotEmpty(t, event.Error)
	})

	t.Run("Move before grab is ignored", func(t *testing.T) {
		event := exchange(DragFrame{Type: "move", X: px, Y: py})
		assert.False(t, event.Accepted)
		assert.Equal(t, round.Start, event.Player)
	})

	t.Run("Grab and drag into the top wall", func(t *testing.T) {
		event := exchange(DragFrame{Type: "down", X: px, Y: py})
		require.True(t, event.Accepted)
		assert.Equal(t, game.Continue, event.Signal)

		for step := 1; step <= 40; step++ {
			event = exchange(DragFrame{Type: "move", X: px, Y: py - float64(step)})
			require.True(t, event.Accepted)
			if event.Signal != game.Continue {
				break
			}
		}
		assert.Equal(t, game.WallTouch, event.Signal)
		assert.Equal(t, game.WallHit, event.State)

		event = exchange(DragFrame{Type: "move", X: px, Y: py})
		assert.False(t, event.Accepted)
		assert.Equal(t, game.WallHit, event.State)
	})

	t.Run("Unknown round is not upgraded", func(t *testing.T) {
		bad := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/rounds/6f1f7a5e-8d4b-4c1e-9a55-0d1b2c3d4e5f/drag"
		_, resp, err := websocket.DefaultDialer.Dial(bad, nil)
		assert.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestDragSocketEndsWhenRoundIsRemoved(t *testing.T) {
	engine, _ := newTestEngine(t)
	round := createRound(t, engine)

	server := httptest.NewServer(engine)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/rounds/" + round.ID + "/drag"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	rec := doJSON(t, engine, http.MethodDelete, "/api/v1/rounds/"+round.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	deadline := time.Now().Add(5 * time.Second)
	require.NoError(t, conn.SetWriteDeadline(deadline))
	require.NoError(t, conn.SetReadDeadline(deadline))

	cx, cy := round.Start.Center()
	require.NoError(t, conn.WriteJSON(DragFrame{Type: "down", X: cx + float64(round.Offset.X), Y: cy + float64(round.Offset.Y)}))

	var event DragEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.False(t, event.Accepted)
	assert.Equal(t, "round not found", event.Error)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func TestDragSessionDeliver(t *testing.T) {
	s := &dragSession{
		send: make(chan DragEvent, 1),
		done: make(chan struct{}),
	}

	assert.True(t, s.deliver(DragEvent{Accepted: true}))

	// full buffer and no writer left
	close(s.done)
	assert.False(t, s.deliver(DragEvent{}))
}
