package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadLimit     = 1 << 20
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type feedEvent struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	Time    time.Time `json:"time"`
}

type wsClient struct {
	ID     int
	Socket *websocket.Conn
}

type wsUnreg struct {
	id   int
	conn *websocket.Conn
}

// WebSocketManager fans complaint and response events out to every
// connected admin dashboard. All access to clients happens in Run.
type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	broadcast  chan feedEvent
	register   chan wsClient
	unregister chan wsUnreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		broadcast:  make(chan feedEvent, 32),
		register:   make(chan wsClient),
		unregister: make(chan wsUnreg),
	}
}

// Broadcast queues an event for every connected client. Dropping when the
// queue is full keeps HTTP handlers from ever blocking on the feed.
func (ws *WebSocketManager) Broadcast(event string, payload any) {
	select {
	case ws.broadcast <- feedEvent{Event: event, Payload: payload, Time: time.Now()}:
	default:
		log.Printf("live feed queue full, dropping %s", event)
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			// a reconnect replaces the previous socket for that user
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register user=%d", client.ID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.id]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.id)
				log.Printf("WS unregister user=%d", u.id)
			}

		case ev := <-ws.broadcast:
			for id, conn := range ws.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("broadcast error to=%d: %v", id, err)
					_ = conn.Close()
					delete(ws.clients, id)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// LiveFeedHandler upgrades the connection for an already-authenticated
// caller; identity comes from the verified token, no hello frame needed.
func (app *application) LiveFeedHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(int)
	if userID == 0 {
		writeAuthError(w, http.StatusUnauthorized, "Token is required, please provide a token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	app.wsManager.register <- wsClient{ID: userID, Socket: conn}

	go pingLoop(app.wsManager, conn, userID)
	go discardIncoming(app.wsManager, conn, userID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	t := time.NewTicker(wsPingInterval)
	defer t.Stop()
	for range t.C {
		// WriteControl may run alongside the manager goroutine's WriteJSON;
		// WriteMessage may not.
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteDeadline)); err != nil {
			ws.unregister <- wsUnreg{id: uid, conn: conn}
			return
		}
	}
}

// The feed is one-way; reads only serve to notice the peer going away.
func discardIncoming(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	defer func() {
		ws.unregister <- wsUnreg{id: uid, conn: conn}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
