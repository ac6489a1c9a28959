package middlewares

import (
	"strconv"
	"strings"

	"formbuilder.link/handlers"

	"github.com/gofiber/fiber/v2"
)

// ActorHeader kimlik doğrulamasını yapan üst katmanın kullanıcı kimliğini ilettiği başlık.
const ActorHeader = "X-User-ID"

// ActorMiddleware X-User-ID başlığındaki kimliği c.Locals("userID") olarak ayarlar.
// Geçersiz değerler yok sayılır.
func ActorMiddleware(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(ActorHeader))
	if raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			c.Locals(handlers.LocalsUserID, uint(id))
		}
	}
	return c.Next()
}
