package handlers

import (
	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// ServeConsumptionFeed streams consumption events to the client until it
// disconnects. Incoming messages are ignored.
func ServeConsumptionFeed(c *websocketcontrib.Conn) {
	client := &websocket.Client{ID: uuid.NewString(), Conn: c}
	feed.Register(client)
	defer func() {
		feed.Unregister(client)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				logger.L().Debug("feed read ended", "client_id", client.ID, "error", err)
			}
			return
		}
	}
}
