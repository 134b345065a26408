package timeline

import "testing"

func TestSnapToQuarterHourBoundary(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{minutes: 0, want: 0},
		{minutes: 7, want: 0},   // 中点以下向下
		{minutes: 8, want: 15},  // 中点处向上
		{minutes: 15, want: 15},
		{minutes: 22, want: 15},
		{minutes: 23, want: 30},
		{minutes: 100, want: 105},
		{minutes: 110, want: 105},
		{minutes: 120, want: 120},
		{minutes: 1437, want: 1440},
	}

	for _, tt := range tests {
		if got := SnapToQuarterHour(tt.minutes); got != tt.want {
			t.Errorf("SnapToQuarterHour(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestSnapToQuarterHourIdempotent(t *testing.T) {
	for minutes := 0; minutes <= MinutesPerDay; minutes++ {
		once := SnapToQuarterHour(minutes)
		if twice := SnapToQuarterHour(once); twice != once {
			t.Fatalf("SnapToQuarterHour 不满足幂等性：%d -> %d -> %d", minutes, once, twice)
		}
	}
}

func TestWindowSnapPercentProjectsFromMinuteSpace(t *testing.T) {
	// 同一个时间点在不同宽度的窗口下必须吸附到同一个分钟数
	fullDay := Window{MinHour: 0, MaxHour: 24}
	businessHours := Window{MinHour: 6, MaxHour: 23}

	const target = 1068 // 17:48

	fullMinutes, _ := fullDay.SnapPercent(fullDay.PercentAtMinutes(target))
	businessMinutes, _ := businessHours.SnapPercent(businessHours.PercentAtMinutes(target))

	if fullMinutes != businessMinutes {
		t.Fatalf("不同窗口下吸附结果漂移：%d vs %d", fullMinutes, businessMinutes)
	}
	if fullMinutes != 1065 { // 17:45
		t.Fatalf("吸附结果 = %d, want 1065", fullMinutes)
	}
}

func TestWindowClamp(t *testing.T) {
	w := Window{MinHour: 6, MaxHour: 23}

	tests := []struct {
		minutes int
		want    int
	}{
		{minutes: 300, want: 360},
		{minutes: 360, want: 360},
		{minutes: 720, want: 720},
		{minutes: 1380, want: 1380},
		{minutes: 1410, want: 1380},
	}

	for _, tt := range tests {
		if got := w.Clamp(tt.minutes); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}
