package loader

import (
	"testing"
	"time"
)

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-09-01", "20240901", "01/09/2024", "2024/09/01"} {
		got, err := ParseDate(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: got %v", s, got)
		}
	}
	if _, err := ParseDate("September 1st"); err == nil {
		t.Error("want error for unparseable date")
	}
}

func TestParseTime_ClockOnly(t *testing.T) {
	got, err := ParseTime("11:30")
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 11 || got.Minute() != 30 || got.Year() != 0 {
		t.Errorf("got %v", got)
	}
	if _, err := ParseTime("25:99"); err == nil {
		t.Error("want error for invalid time")
	}
}

func TestParsePercent(t *testing.T) {
	d, err := ParsePercent("1.2")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "0.012" {
		t.Errorf("got %s", d.String())
	}
}

func TestAddTenor(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		tenor string
		want  string
		ok    bool
	}{
		{"5Y", "2029-09-01", true},
		{"6M", "2025-03-01", true},
		{"2W", "2024-09-15", true},
		{"90D", "2024-11-30", true},
		{"5", "", false},
		{"Y5", "", false},
		{"0Y", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := addTenor(start, tc.tenor)
		if !tc.ok {
			if err == nil {
				t.Errorf("%q: want error", tc.tenor)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.tenor, err)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("%q: got %s", tc.tenor, got.Format("2006-01-02"))
		}
	}
}
