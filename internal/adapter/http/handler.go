package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/paramveer-prakash/career-sub001/internal/usecase"
)

type Handler struct {
	svc usecase.ExportService
}

func NewHandler(svc usecase.ExportService) *Handler {
	return &Handler{svc: svc}
}

// ListTemplates responds with the ordered array of {key, name, description}.
func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListTemplates())
}

func (h *Handler) RenderHTML(c *fiber.Ctx) error {
	key, resumeID := utils.CopyString(c.Params("key")), utils.CopyString(c.Params("resumeId"))

	html, err := h.svc.RenderHTML(c.UserContext(), key, resumeID, bearerToken(c))
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) RenderPDF(c *fiber.Ctx) error {
	key, resumeID := utils.CopyString(c.Params("key")), utils.CopyString(c.Params("resumeId"))

	pdf, err := h.svc.RenderPDF(c.UserContext(), key, resumeID, bearerToken(c))
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, pdfFilename(resumeID, key)))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(pdf)
}

func (h *Handler) Thumbnail(c *fiber.Ctx) error {
	html, err := h.svc.RenderThumbnail(c.Params("key"))
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// bearerToken returns the credential of an "Authorization: Bearer" header,
// or "" when the request carries none.
func bearerToken(c *fiber.Ctx) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// pdfFilename builds resume-{id}-{key}.pdf. Characters that would break the
// quoted header value are replaced.
func pdfFilename(resumeID, key string) string {
	clean := strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, resumeID)
	return "resume-" + clean + "-" + key + ".pdf"
}
