package ws

import (
	"errors"
	"log"
	"net/http"

	"coffeeshop/services"
	"coffeeshop/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHandler ให้ client เปิด WS แล้วขอ status การจัดส่งสด ๆ ได้เรื่อย ๆ
// server ไม่ push เอง — derive ใหม่เฉพาะตอน client ส่งข้อความมาขอเท่านั้น
type TrackingHandler struct {
	Orders *services.OrderService
}

func NewTrackingHandler(orders *services.OrderService) *TrackingHandler {
	return &TrackingHandler{Orders: orders}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type trackingSnapshot struct {
	Orders []services.OrderView `json:"orders"`
}

// WS route: /ws/orders/track (ต้อง login — userId มาจาก JWT)
func (h *TrackingHandler) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		// ข้อความอะไรก็ได้จาก client = ขอ snapshot รอบใหม่
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}

		views, err := h.Orders.ListForUser(userID)
		if err != nil && !errors.Is(err, services.ErrNoOrders) {
			log.Printf("ws list orders error: %v", err)
			break
		}
		if views == nil {
			// ยังไม่มีออเดอร์ก็ตอบ [] ไม่ใช่ null
			views = []services.OrderView{}
		}

		if err := conn.WriteJSON(trackingSnapshot{Orders: views}); err != nil {
			log.Printf("ws write error: %v", err)
			break
		}
	}
}
