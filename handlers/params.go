package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// LocalsUserID isteği yapan kullanıcının kimliğinin tutulduğu Locals anahtarı.
const LocalsUserID = "userID"

// ParamID rota parametresini pozitif bir kimlik olarak okur.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz "+name+" parametresi")
	}
	return uint(id), nil
}

// ActorID varsa isteği yapan kullanıcının kimliğini döner.
func ActorID(c *fiber.Ctx) *uint {
	userID, ok := c.Locals(LocalsUserID).(uint)
	if !ok || userID == 0 {
		return nil
	}
	return &userID
}

// ParseJSONBody gövdeyi verilen hedefe çözer; hata 400 olarak döner.
func ParseJSONBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi: "+err.Error())
	}
	return nil
}
