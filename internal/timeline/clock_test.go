package timeline

import (
	"fmt"
	"testing"
)

func TestParseTimeRoundTrip(t *testing.T) {
	// 所有合法的 HH:MM 都必须能无损地往返
	for minutes := 0; minutes < MinutesPerDay; minutes++ {
		hhmm := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)

		parsed, err := ParseTime(hhmm)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", hhmm, err)
		}
		if parsed != minutes {
			t.Fatalf("ParseTime(%q) = %d, want %d", hhmm, parsed, minutes)
		}
		if got := MinutesToTimeStr(parsed); got != hhmm {
			t.Fatalf("MinutesToTimeStr(ParseTime(%q)) = %q", hhmm, got)
		}
	}
}

func TestParseTimeRejectsMalformed(t *testing.T) {
	for _, hhmm := range []string{"", "9", "24:00", "12:60", "ab:cd", "12-30"} {
		if _, err := ParseTime(hhmm); err == nil {
			t.Errorf("ParseTime(%q) 应该返回错误", hhmm)
		}
	}
}

func TestMinutesToTimeStrWrapsAtMidnight(t *testing.T) {
	if got := MinutesToTimeStr(MinutesPerDay); got != "00:00" {
		t.Fatalf("MinutesToTimeStr(1440) = %q, want 00:00", got)
	}
	if got := MinutesToTimeStr(MinutesPerDay + 90); got != "01:30" {
		t.Fatalf("MinutesToTimeStr(1530) = %q, want 01:30", got)
	}
}

func TestNetHours(t *testing.T) {
	tests := []struct {
		name         string
		start        string
		end          string
		breakMinutes int
		want         float64
	}{
		{name: "普通班次", start: "09:00", end: "17:00", breakMinutes: 0, want: 8},
		{name: "普通班次带休息", start: "09:00", end: "17:00", breakMinutes: 30, want: 7.5},
		{name: "跨午夜", start: "22:00", end: "06:00", breakMinutes: 0, want: 8},
		{name: "跨午夜带休息", start: "22:00", end: "06:00", breakMinutes: 60, want: 7},
		{name: "休息超过时长时取零", start: "10:00", end: "10:15", breakMinutes: 120, want: 0},
		{name: "首尾相同按整天处理", start: "08:00", end: "08:00", breakMinutes: 0, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetHours(tt.start, tt.end, tt.breakMinutes); got != tt.want {
				t.Fatalf("NetHours(%q, %q, %d) = %v, want %v", tt.start, tt.end, tt.breakMinutes, got, tt.want)
			}
		})
	}
}

func TestNetHoursNeverNegative(t *testing.T) {
	for startMinutes := 0; startMinutes < MinutesPerDay; startMinutes += 97 {
		for endMinutes := 0; endMinutes < MinutesPerDay; endMinutes += 83 {
			for _, breakMinutes := range []int{0, 30, 480, 2000} {
				got := float64(NetMinutes(startMinutes, endMinutes, breakMinutes)) / 60
				if got < 0 {
					t.Fatalf("NetMinutes(%d, %d, %d) 为负", startMinutes, endMinutes, breakMinutes)
				}
			}
		}
	}
}

func TestFormatTimeShort(t *testing.T) {
	tests := []struct {
		hhmm string
		want string
	}{
		{hhmm: "09:00", want: "9a"},
		{hhmm: "17:30", want: "5:30p"},
		{hhmm: "00:00", want: "12a"},
		{hhmm: "12:00", want: "12p"},
		{hhmm: "00:15", want: "12:15a"},
		{hhmm: "23:45", want: "11:45p"},
	}

	for _, tt := range tests {
		if got := FormatTimeShort(tt.hhmm); got != tt.want {
			t.Errorf("FormatTimeShort(%q) = %q, want %q", tt.hhmm, got, tt.want)
		}
	}
}
