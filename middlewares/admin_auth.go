package middlewares

import (
	"formbuilder.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyHeader yönetim API anahtarının gönderildiği başlık.
const AdminKeyHeader = "X-API-Key"

// AdminAuth X-API-Key başlığını bcrypt hash'i ile karşılaştırır.
// Hash boşsa yönetim API'si korumasız çalışır ve bu durum bir kez loglanır.
func AdminAuth(keyHash string) fiber.Handler {
	if keyHash == "" {
		configslog.Log.Warn("ADMIN_API_KEY_HASH tanımlı değil, yönetim API'si anahtarsız erişime açık")
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	hash := []byte(keyHash)

	return func(c *fiber.Ctx) error {
		key := c.Get(AdminKeyHeader)
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "API anahtarı gerekli"})
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
			configslog.Log.Warn("Geçersiz API anahtarı", zap.String("ip", c.IP()), zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Geçersiz API anahtarı"})
		}
		return c.Next()
	}
}

// HashAdminKey yönetim anahtarından ADMIN_API_KEY_HASH değerini üretir.
func HashAdminKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
