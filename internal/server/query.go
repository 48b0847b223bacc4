package server

import (
	"strings"

	"github.com/pkg/errors"
)

// queryValues - нестрогий разбор application/x-www-form-urlencoded строки.
// Разделитель пар только '&', пустые пары пропускаются, пара без '=' дает пустое значение.
// Разбор никогда не завершается ошибкой.
func queryValues(rawQuery string) map[string][]string {
	values := make(map[string][]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = decodeComponent(key)
		values[key] = append(values[key], decodeComponent(value))
	}
	return values
}

// decodeComponent декодирует '+' и %XX. Некорректная %-последовательность остается как есть,
// невалидный UTF-8 заменяется на U+FFFD.
func decodeComponent(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// redirectTarget - извлечение адреса перенаправления из query запроса.
// Параметр обязателен и должен быть передан ровно один раз, пустое значение допустимо.
// Ошибки в остальных параметрах на результат не влияют.
func redirectTarget(rawQuery string) (string, error) {
	values, ok := queryValues(rawQuery)[RedirectParam]
	if !ok {
		return "", errors.Wrapf(ErrBadRequest, "missing %s parameter", RedirectParam)
	}
	if len(values) != 1 {
		return "", errors.Wrapf(ErrBadRequest, "duplicate %s parameter", RedirectParam)
	}
	return values[0], nil
}
