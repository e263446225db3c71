package view

import (
	"strconv"
	"strings"
)

const (
	currency   = "synapses"
	priceless  = "Priceless"
	emptyLabel = "Basket is empty"
)

var categoryClasses = map[string]string{
	"софт-скил":      "soft",
	"другое":         "other",
	"дополнительное": "additional",
	"кнопка":         "button",
	"хард-скил":      "hard",
}

// CategoryClass maps a catalog category to its display class.
// Unknown categories fall back to "other".
func CategoryClass(category string) string {
	if class, ok := categoryClasses[category]; ok {
		return class
	}
	return "other"
}

// FormatNumber groups digits in threes with spaces: 1234567 -> "1 234 567".
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// FormatAmount renders an amount of money.
func FormatAmount(n int64) string {
	return FormatNumber(n) + " " + currency
}

// FormatPrice renders a product price; nil and zero mean priceless.
func FormatPrice(price *int64) string {
	if price == nil || *price == 0 {
		return priceless
	}
	return FormatAmount(*price)
}
