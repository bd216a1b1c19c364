package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to both participants of a booking whenever
// its status changes. Carrying the participant ids on the event keeps
// the hub free of store lookups.
type BookingEvent struct {
	BookingID uuid.UUID `json:"booking_id"`
	StudentID uuid.UUID `json:"-"`
	TeacherID uuid.UUID `json:"-"`
	Status    string    `json:"status"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan BookingEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			deliver(event, event.StudentID)
			deliver(event, event.TeacherID)
		}
	}
}

// Publish hands an event to the hub without blocking the transaction
// that produced it; if the hub is backed up the event is dropped.
func Publish(event BookingEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Printf("Booking feed backed up, dropping event for booking %s", event.BookingID)
	}
}

func deliver(event BookingEvent, userID uuid.UUID) {
	clientsMu.RLock()
	conn, ok := clients[userID]
	clientsMu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		log.Printf("Error sending booking event to client %s: %v", userID, err)
		conn.Close()
		clientsMu.Lock()
		delete(clients, userID)
		clientsMu.Unlock()
	}
}
