package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, time.July, 1)},
		{"2025-7-1", New(2025, time.July, 1)},
		{"2024-02-29", New(2024, time.February, 29)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("07/01/2025"); err == nil {
		t.Errorf("Parse(%q) expected an error", "07/01/2025")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.January, 32)
	if want := New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}

func TestScanValue(t *testing.T) {
	d := New(2025, time.March, 9)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != "2025-03-09" {
		t.Errorf("Value() = %v, want %q", v, "2025-03-09")
	}

	var got Date
	if err := got.Scan([]byte("2025-03-09")); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got != d {
		t.Errorf("Scan() = %v, want %v", got, d)
	}

	if err := got.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if !got.IsZero() {
		t.Errorf("Scan(nil) = %v, want zero date", got)
	}
	if v, _ := (Date{}).Value(); v != nil {
		t.Errorf("zero Value() = %v, want nil", v)
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.October, 19)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2025-10-19"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2025-10-19"`)
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, d)
	}
}
