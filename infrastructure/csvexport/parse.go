package csvexport

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Layouts aceitos para datas exportadas. A entrada é convertida para maiúsculas antes do parse,
// então apenas "PM" aparece nos layouts; nomes de mês são comparados sem diferenciar caixa.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	time.DateOnly,
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006",
	"January 2, 2006",
	"January 2006",
	"Jan 2006",
	"2006-01",
}

// parseCount converte contadores no formato exportado ("1,234", "-", "").
// O segundo retorno é falso quando havia conteúdo que não pôde ser interpretado.
func parseCount(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return 0, true
	}

	digits := leadingInt.FindString(strings.ReplaceAll(value, ",", ""))
	if digits == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// parseReach trata "-" como alcance desconhecido (nil), distinto de zero
func parseReach(value string) (*int64, bool) {
	if strings.TrimSpace(value) == "-" {
		return nil, true
	}
	n, ok := parseCount(value)
	return &n, ok
}

// parsePercentage converte "12.5%" em 0.125
func parsePercentage(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return 0, true
	}

	number := leadingFloat.FindString(strings.TrimSpace(strings.Replace(value, "%", "", 1)))
	if number == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}

	return f / 100, true
}

// parseTimestamp tenta cada layout conhecido no fuso do dataset
func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	value = strings.ToUpper(strings.Join(strings.Fields(value), " "))
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), true
		}
	}

	return time.Time{}, false
}

var truthyFlags = map[string]struct{}{
	"FR":   {},
	"TRUE": {},
	"YES":  {},
	"Y":    {},
	"OUI":  {},
	"1":    {},
	"X":    {},
}

func isFrenchFlag(value string) bool {
	_, ok := truthyFlags[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}
