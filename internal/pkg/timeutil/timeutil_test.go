package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"11:00", 660, false},
		{"16:15", 975, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"11:60", 0, true},
		{"11h00", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", c.input, err, c.wantErr)
			continue
		}
		if !c.wantErr && got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestFormatMinutesHours(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "0h00m"},
		{-30, "0h00m"},
		{5, "0h05m"},
		{60, "1h00m"},
		{540, "9h00m"},
		{525, "8h45m"},
	}
	for _, c := range cases {
		if got := FormatMinutesHours(c.input); got != c.want {
			t.Errorf("FormatMinutesHours(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFormatSignedMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{-20, "-0h20m"},
		{0, "0h00m"},
		{15, "0h15m"},
		{-525, "-8h45m"},
	}
	for _, c := range cases {
		if got := FormatSignedMinutes(c.input); got != c.want {
			t.Errorf("FormatSignedMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMinutesOfDayUTC(t *testing.T) {
	ts := time.Date(2025, 3, 10, 11, 15, 42, 0, time.UTC)
	if got := MinutesOfDayUTC(ts); got != 675 {
		t.Errorf("MinutesOfDayUTC = %d, want 675", got)
	}

	// Offset timestamps are normalized to UTC first.
	offset := time.Date(2025, 3, 10, 8, 15, 0, 0, time.FixedZone("BRT", -3*3600))
	if got := MinutesOfDayUTC(offset); got != 675 {
		t.Errorf("MinutesOfDayUTC (offset zone) = %d, want 675", got)
	}
}

func TestMonthInterval(t *testing.T) {
	start, end := MonthInterval(2025, time.March)
	if start != time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", start)
	}
	if end != time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("end = %v", end)
	}

	// December rolls into the next year.
	_, end = MonthInterval(2025, time.December)
	if end != time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("december end = %v", end)
	}
}

func TestFormatDateInFull(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	want := "segunda-feira, 10 de março de 2025"
	if got := FormatDateInFull(date); got != want {
		t.Errorf("FormatDateInFull = %q, want %q", got, want)
	}
}

func TestIsBusinessDay(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	if !IsBusinessDay(monday) {
		t.Error("monday should be a business day")
	}
	if IsBusinessDay(saturday) || IsBusinessDay(sunday) {
		t.Error("weekend should not be a business day")
	}
}
