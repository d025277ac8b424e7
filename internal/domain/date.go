package domain

import "time"

var indonesianMonths = []string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a date in Indonesian long form, e.g. "15 Januari 2025"
func FormatDate(t time.Time) string {
	return t.Format("2 ") + indonesianMonths[t.Month()] + t.Format(" 2006")
}

// DaysUntil returns the number of started days from now until t, rounding
// up like the dashboard countdown. Zero or less means t has passed.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
