package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts a wall-clock string ("HH:MM") to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string: %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string: %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string: %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock out of range: %q", clock)
	}
	return hours*60 + minutes, nil
}

// FormatClock converts minutes since midnight to a "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatMinutesHours renders a non-negative duration as "<H>h<MM>m".
// Zero or negative totals render as "0h00m".
func FormatMinutesHours(totalMinutes int) string {
	if totalMinutes <= 0 {
		return "0h00m"
	}
	return fmt.Sprintf("%dh%02dm", totalMinutes/60, totalMinutes%60)
}

// FormatSignedMinutes renders a signed balance as "<H>h<MM>m" with a leading
// minus for deficits ("-0h20m").
func FormatSignedMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		return "-" + FormatMinutesHours(-totalMinutes)
	}
	return FormatMinutesHours(totalMinutes)
}

// MinutesOfDayUTC returns minutes elapsed since UTC midnight of t's civil day.
func MinutesOfDayUTC(t time.Time) int {
	utc := t.UTC()
	return utc.Hour()*60 + utc.Minute()
}

// CombineDateAndClock places minutes-since-midnight onto date's UTC civil day.
func CombineDateAndClock(date time.Time, minutes int) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
}

// StartOfDayUTC truncates t to UTC midnight.
func StartOfDayUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthInterval returns the half-open interval [first day, first day of next month).
func MonthInterval(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// FormatDate renders a date as ISO "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatDateBR renders a date as "DD/MM/YYYY".
func FormatDateBR(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

var weekdayNames = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthNames = [13]string{
	"", "janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// WeekdayName returns the Portuguese weekday label.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.UTC().Weekday())]
}

// MonthName returns the Portuguese month label.
func MonthName(m time.Month) string {
	return monthNames[int(m)]
}

// FormatDateInFull renders "segunda-feira, 10 de março de 2025".
func FormatDateInFull(t time.Time) string {
	utc := t.UTC()
	return fmt.Sprintf("%s, %02d de %s de %d",
		WeekdayName(utc), utc.Day(), MonthName(utc.Month()), utc.Year())
}

// IsBusinessDay reports whether t falls on Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
