package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message 是推给前端的一帧
type Message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

const writeWait = 5 * time.Second

// Hub 按对局 ID 分组维护订阅连接，只推不收。
type Hub struct {
	mu        sync.Mutex
	games     map[string]map[*websocket.Conn]struct{}
	upgrader  websocket.Upgrader
	writeWait time.Duration // 单帧写超时，卡住的客户端会被踢掉
}

func NewHub(allowAnyOrigin bool) *Hub {
	h := &Hub{
		games:     make(map[string]map[*websocket.Conn]struct{}),
		writeWait: writeWait,
	}
	if allowAnyOrigin {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// Serve upgrades the request, sends hello() as the first "state" frame and
// keeps the subscription until the client goes away. hello is evaluated after
// the connection is registered, so no move committed afterwards is missed.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, gameID string, hello func() interface{}) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	// 先登记再发首帧：客户端收到首帧即保证之后的广播不会漏
	h.mu.Lock()
	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[*websocket.Conn]struct{})
	}
	h.games[gameID][conn] = struct{}{}
	err = h.write(conn, Message{Action: "state", Data: hello()})
	h.mu.Unlock()

	defer h.drop(gameID, conn)
	if err != nil {
		return err
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) drop(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.games[gameID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.games, gameID)
		}
	}
	_ = conn.Close()
}

func (h *Hub) Broadcast(gameID string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.games[gameID] {
		if err := h.write(conn, Message{Action: action, Data: data}); err != nil {
			log.Printf("ws: send to %s failed: %v", gameID, err)
			_ = conn.Close()
			delete(h.games[gameID], conn)
		}
	}
}

// write 调用方需持有 h.mu
func (h *Hub) write(conn *websocket.Conn, msg Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func (h *Hub) Subscribers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games[gameID])
}
