package chatws

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/services"
	websocket "github.com/gofiber/contrib/websocket"
)

const replyTimeout = 60 * time.Second

// Hub tracks open chatbot connections per user.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	count      chan countRequest
	quit       chan struct{}
}

type countRequest struct {
	userID string
	reply  chan int
}

// Conn is the part of a websocket connection a client uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one connection. Its transcript lives only as long as the
// connection does.
type Client struct {
	hub        *Hub
	conn       Conn
	userID     string
	send       chan []byte
	transcript []models.ChatMessage
}

type responder interface {
	Reply(ctx context.Context, userID int64, message string, history []models.ChatMessage) (string, error)
}

type Message struct {
	Type      string `json:"type"`
	Role      string `json:"role,omitempty"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		count:      make(chan countRequest),
		quit:       make(chan struct{}),
	}
}

func NewClient(hub *Hub, conn Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			h.remove(client)
		case req := <-h.count:
			req.reply <- len(h.clients[req.userID])
		case <-h.quit:
			for _, set := range h.clients {
				for client := range set {
					_ = client.conn.Close()
				}
			}
			h.clients = make(map[string]map[*Client]struct{})
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.quit:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.quit:
	}
}

// Connections reports how many connections userID has open.
func (h *Hub) Connections(userID string) int {
	reply := make(chan int, 1)
	select {
	case h.count <- countRequest{userID: userID, reply: reply}:
		return <-reply
	case <-h.quit:
		return 0
	}
}

func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

// Transcript returns a copy of the conversation so far.
func (c *Client) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// ReadPump greets the user and then answers each incoming message in order.
// A failed reply is recorded as the fallback answer and never retried.
// ReadPump is the only sender on c.send and closes it on return.
func (c *Client) ReadPump(service responder) {
	defer func() {
		c.hub.Unregister(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	actorID, err := strconv.ParseInt(c.userID, 10, 64)
	if err != nil {
		writeError(c, "invalid user")
		return
	}

	if !c.enqueue(&Message{Type: "welcome", Role: models.ChatRoleAssistant, Content: services.WelcomeMessage}) {
		return
	}

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type    string `json:"type"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			if !writeError(c, "invalid message payload") {
				return
			}
			continue
		}
		if incoming.Type != "message" {
			if !writeError(c, "unsupported message type") {
				return
			}
			continue
		}
		if incoming.Content == "" {
			if !writeError(c, "message is required") {
				return
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		reply, err := service.Reply(ctx, actorID, incoming.Content, c.transcript)
		cancel()
		if err != nil {
			log.Printf("chatbot reply for user %s: %v", c.userID, err)
			reply = services.FallbackReply
		}

		c.transcript = append(c.transcript,
			models.ChatMessage{Role: models.ChatRoleUser, Content: incoming.Content},
			models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply},
		)
		if !c.enqueue(&Message{Type: "reply", Role: models.ChatRoleAssistant, Content: reply}) {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// enqueue reports false when the client has stopped draining its queue.
func (c *Client) enqueue(message *Message) bool {
	message.Timestamp = time.Now().UTC().Format(time.RFC3339)
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("chatbot encode message: %v", err)
		return true
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func writeError(client *Client, message string) bool {
	return client.enqueue(&Message{Type: "error", Content: message})
}
