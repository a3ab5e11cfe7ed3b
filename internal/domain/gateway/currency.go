package gateway

import (
	"fmt"
	"strings"
)

// ISO 4217 numeric codes used by the card acquirers.
var numericCurrencies = map[string]string{
	"AMD": "051",
	"USD": "840",
	"EUR": "978",
	"RUB": "643",
}

func NumericCurrency(alpha string) (string, bool) {
	code, ok := numericCurrencies[strings.ToUpper(alpha)]
	return code, ok
}

func AlphaCurrency(numeric string) (string, bool) {
	for alpha, code := range numericCurrencies {
		if code == numeric {
			return alpha, true
		}
	}
	return "", false
}

type Locale string

const (
	LocaleArmenian Locale = "hy"
	LocaleRussian  Locale = "ru"
	LocaleEnglish  Locale = "en"
)

// NormalizeLocale falls back to Armenian for anything it does not know.
func NormalizeLocale(raw string) Locale {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ru", "ru-ru":
		return LocaleRussian
	case "en", "en-us", "en-gb":
		return LocaleEnglish
	default:
		return LocaleArmenian
	}
}

func Description(orderNumber string) string {
	return fmt.Sprintf("Order #%s", orderNumber)
}
