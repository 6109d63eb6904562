package render

import (
	"fmt"
	"time"
)

// NoDateText is the fallback shown wherever a date is missing or invalid.
const NoDateText = "Дата не указана"

var ruMonthsGenitive = [13]string{
	"", "января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate renders an ISO calendar date as a long Russian date,
// e.g. "15 июня 2025 г.". Missing or unparseable input yields NoDateText.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return NoDateText
	}
	return fmt.Sprintf("%d %s %d г.", t.Day(), ruMonthsGenitive[t.Month()], t.Year())
}

// FormatDeadline renders a day-and-month date for the RSVP deadline line,
// e.g. "1 июня". Invalid input yields an empty string so the line is
// omitted entirely.
func FormatDeadline(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s", t.Day(), ruMonthsGenitive[t.Month()])
}
