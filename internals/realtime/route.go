package realtime

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	authService "tutorku_backend/internals/features/users/auth/service"
)

// RegisterRoutes memasang endpoint websocket di /ws.
// Token diverifikasi sebelum upgrade, dengan verifier yang sama seperti
// middleware HTTP; tanpa token valid koneksi ditolak 401.
func RegisterRoutes(app *fiber.App, hub *Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		claims, err := authService.VerifyToken(c.Query("token"))
		if err != nil {
			return fiber.ErrUnauthorized
		}
		c.Locals("ws_user_id", claims.ID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("ws_user_id").(string)
		if userID == "" {
			_ = conn.Close()
			return
		}
		ServeClient(hub, conn, userID)
	}))
}
