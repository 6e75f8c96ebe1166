package jobs

import (
	"context"
	"testing"

	"github.com/robfig/cron/v3"
)

type stubReporter struct{}

func (stubReporter) ReportOverdueStays(ctx context.Context) error { return nil }

type stubSweeper struct{}

func (stubSweeper) SweepListCaches(ctx context.Context) error { return nil }

func TestInitCronJobs(t *testing.T) {
	SetOverdueReporter(stubReporter{})
	SetCacheSweeper(stubSweeper{})

	c := cron.New()
	if err := InitCronJobs(c); err != nil {
		t.Fatalf("InitCronJobs() error: %v", err)
	}
	defer c.Stop()

	// rà soát quá hạn hằng đêm + dọn cache mỗi giờ
	if got := len(c.Entries()); got != 2 {
		t.Errorf("registered jobs = %d, want 2", got)
	}
}
