package websocket

import (
	"log"
	"sync"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub fans the activity stream out to every connected admin dashboard:
// new applications, payments, status moves appear live without polling.

type Client struct {
	AdminID uuid.UUID
	Conn    *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var broadcast = make(chan *models.ActivityLog, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Activity feed client registered: %s", client.AdminID)
			clientsMu.Lock()
			clients[client.AdminID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Activity feed client unregistered: %s", client.AdminID)
			clientsMu.Lock()
			if conn, ok := clients[client.AdminID]; ok && conn == client.Conn {
				delete(clients, client.AdminID)
			}
			clientsMu.Unlock()
		case entry := <-broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for adminID, conn := range clients {
				if err := conn.WriteJSON(entry); err != nil {
					log.Printf("Error pushing activity to client %s: %v", adminID, err)
					conn.Close()
					dead = append(dead, adminID)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, adminID := range dead {
					delete(clients, adminID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// BroadcastActivity queues an entry for the feed. Never blocks the caller;
// if the hub is not running or the buffer is full the entry is dropped.
func BroadcastActivity(entry *models.ActivityLog) {
	select {
	case broadcast <- entry:
	default:
	}
}
