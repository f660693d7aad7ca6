package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "Request timed out",
			"error.service_unavailable":   "Service temporarily unavailable",
			"error.order.invalid_request": "Invalid order request!",
			"error.order.invalid_format":  "Invalid order format!",
			"error.product.not_found":     "Product %q not found!",
			"error.product.invalid":       "Invalid product",
			"error.history.disabled":      "Order history is not enabled",

			// Success messages
			"success.order_created": "Order was successfully created!",
			"success.product_saved": "Product was successfully saved!",
		},
		"pt": {
			// Error messages
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.not_found":             "Não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.timeout":               "Tempo da requisição esgotado",
			"error.service_unavailable":   "Serviço temporariamente indisponível",
			"error.order.invalid_request": "Pedido inválido!",
			"error.order.invalid_format":  "Formato do pedido inválido!",
			"error.product.not_found":     "Produto %q não encontrado!",
			"error.product.invalid":       "Produto inválido",
			"error.history.disabled":      "O histórico de pedidos não está ativado",

			// Success messages
			"success.order_created": "Pedido criado com sucesso!",
			"success.product_saved": "Produto salvo com sucesso!",
		},
		"nl": {
			// Error messages
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.not_found":             "Niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.timeout":               "Verzoek duurde te lang",
			"error.service_unavailable":   "Dienst tijdelijk niet beschikbaar",
			"error.order.invalid_request": "Ongeldige bestelling!",
			"error.order.invalid_format":  "Ongeldig bestelformaat!",
			"error.product.not_found":     "Product %q niet gevonden!",
			"error.product.invalid":       "Ongeldig product",
			"error.history.disabled":      "Bestelgeschiedenis is niet ingeschakeld",

			// Success messages
			"success.order_created": "Bestelling is succesvol aangemaakt!",
			"success.product_saved": "Product is succesvol opgeslagen!",
		},
	}
}
