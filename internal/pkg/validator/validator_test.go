package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-10"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2025-03-10")
	}
	invalid := []string{"2025-13-10", "10/03/2025", "2025-03-32", "not-a-date", ""}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "11:00", "23:59"}
	invalid := []string{"24:00", "11:60", "1:05", "11h00", "11:0", "", "aa:bb"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidCompetence(t *testing.T) {
	if _, ok := IsValidCompetence("2025-03"); !ok {
		t.Errorf("IsValidCompetence(%q) = false, want true", "2025-03")
	}
	invalid := []string{"2025-13", "03-2025", "2025", ""}
	for _, competence := range invalid {
		if _, ok := IsValidCompetence(competence); ok {
			t.Errorf("IsValidCompetence(%q) = true, want false", competence)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-03-10T11:15:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2025-03-10", "11:15", "2025-03-10 11:15:00", ""}
	for _, ts := range valid {
		if _, ok := IsValidDateTime(ts); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if _, ok := IsValidDateTime(ts); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", ts)
		}
	}
}
