package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/security"
)

const (
	contextLanguageKey = "current_language"
	contextSubjectKey  = "token_subject"
	bearerPrefix       = "bearer "
)

// AuthRequired accepts requests carrying a valid "Authorization: Bearer"
// token signed with the handler's key.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return apiError(c, fiber.StatusUnauthorized, handler.translate(c, "errors.unauthorized"))
	}

	claims, err := security.ParseToken(handler.signingKey, strings.TrimSpace(header[len(bearerPrefix):]), handler.now())
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, handler.translate(c, "errors.unauthorized"))
	}

	c.Locals(contextSubjectKey, claims.Subject)
	return c.Next()
}

// LanguageMiddleware picks the response language from ?lang, then
// Accept-Language, then the saved setting.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.tracker.Language()
	if raw := strings.TrimSpace(c.Query("lang")); raw != "" {
		language = handler.i18n.NormalizeLanguage(raw)
	} else if header := strings.TrimSpace(c.Get(fiber.HeaderAcceptLanguage)); header != "" {
		language = handler.i18n.DetectFromAcceptLanguage(header)
	}
	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func currentLanguage(c *fiber.Ctx) models.Language {
	language, ok := c.Locals(contextLanguageKey).(models.Language)
	if !ok {
		return models.LanguageEN
	}
	return language
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	return handler.i18n.Translate(currentLanguage(c), key)
}
