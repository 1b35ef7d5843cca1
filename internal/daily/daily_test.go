package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("x", -2*3600))
	if got := DateKey(ts); got != "2024-03-02" {
		t.Fatalf("DateKey = %q, want %q", got, "2024-03-02")
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	a := WordIndex(day, "salt", 500)
	if b := WordIndex(later, "salt", 500); a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 500 {
		t.Fatalf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Fatal("zero-length list should give index 0")
	}
}

func TestPickerSpreadsAcrossDays(t *testing.T) {
	seen := map[int]bool{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 30; d++ {
		p := Picker{Date: start.AddDate(0, 0, d), Salt: "s"}
		seen[p.Intn(1000)] = true
	}
	if len(seen) < 20 {
		t.Fatalf("30 days produced only %d distinct indexes", len(seen))
	}
}
