package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	collect := tm.Begin("collect")
	tm.End(collect, "3 files")
	process := tm.Begin("process")
	tm.End(process, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].DurationMS != 2 || r.TotalMS != 4 {
		t.Fatalf("unexpected report %+v", r)
	}
	sum := tm.Summary()
	if !strings.Contains(sum, "collect") || !strings.Contains(sum, "// 3 files") || !strings.Contains(sum, "total") {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("want empty report, got %+v", r)
	}
}
