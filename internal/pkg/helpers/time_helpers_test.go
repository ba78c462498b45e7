package helpers

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		want    int
		wantErr bool
	}{
		{name: "midnight", clock: "00:00", want: 0},
		{name: "morning", clock: "08:30", want: 510},
		{name: "last minute", clock: "23:59", want: 1439},
		{name: "hour out of range", clock: "24:00", wantErr: true},
		{name: "minute out of range", clock: "12:60", wantErr: true},
		{name: "negative", clock: "-1:00", wantErr: true},
		{name: "no colon", clock: "1200", wantErr: true},
		{name: "garbage", clock: "ab:cd", wantErr: true},
		{name: "empty", clock: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseClock(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.June, 15, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, time.June, 16, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, evening) {
		t.Fatalf("expected same day")
	}
	if SameDay(evening, nextDay) {
		t.Fatalf("expected different days")
	}
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2026, time.June, 15, 17, 45, 12, 999, time.Local)
	start := DayStart(ts)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", start)
	}
	if !SameDay(ts, start) {
		t.Fatalf("truncation moved the date")
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	ts := time.Date(2026, time.June, 15, 14, 30, 59, 0, time.Local)
	if got := MinutesSinceMidnight(ts); got != 14*60+30 {
		t.Fatalf("MinutesSinceMidnight() = %d, want %d", got, 14*60+30)
	}
}

func TestParseDurationFallsBackToDefault(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Fatalf("ParseDuration() = %v, want 90m", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Fatalf("ParseDuration() fallback = %v, want 1h", got)
	}
}
