package controllers

import (
	"golang-medtrackbackend/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChangesWS upgrades the request and streams entity-change events to the
// caller until the connection drops. Clients re-fetch on every event.
func ChangesWS() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := &services.WSClient{UserID: uid, Conn: conn}
		services.Hub.Register(client)

		// ping to keep connections alive through proxies
		go func() {
			t := time.NewTicker(25 * time.Second)
			defer t.Stop()
			for range t.C {
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					services.Hub.Unregister(client)
					return
				}
			}
		}()

		// read loop ends on client close/error
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				services.Hub.Unregister(client)
				return
			}
		}
	}
}
