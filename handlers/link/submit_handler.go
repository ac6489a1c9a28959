package link

import (
	"strings"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/dto"
	"formbuilder.link/handlers"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmitHandler public form gönderimlerini alır.
type SubmitHandler struct {
	submissionService services.ISubmissionService
}

func NewSubmitHandler(submissionService services.ISubmissionService) *SubmitHandler {
	return &SubmitHandler{submissionService: submissionService}
}

// Submit POST /f/:slug/submit
// JSON gövde ({"values": {"12": "..."}}) veya field_<id> anahtarlı form verisi kabul edilir.
func (h *SubmitHandler) Submit(c *fiber.Ctx) error {
	slug := c.Params("slug")

	values, err := submittedValues(c)
	if err != nil {
		configslog.Log.Warn("Submit: gönderim verisi okunamadı",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz gönderim verisi")
	}

	receipt, err := h.submissionService.RecordSubmission(c.UserContext(), slug, values, handlers.ActorID(c), c.IP())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

func submittedValues(c *fiber.Ctx) (services.SubmittedValues, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var req dto.SubmissionCreateDTO
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return nil, err
			}
		}
		return services.SubmittedValues(req.FieldValues()), nil

	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		values := services.SubmittedValues{}
		for key, list := range form.Value {
			if id, ok := dto.ParseFieldKey(key); ok {
				values[id] = append(values[id], list...)
			}
		}
		return values, nil

	default:
		values := services.SubmittedValues{}
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			if id, ok := dto.ParseFieldKey(string(key)); ok {
				values[id] = append(values[id], string(value))
			}
		})
		return values, nil
	}
}
