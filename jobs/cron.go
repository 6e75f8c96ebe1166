package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OverdueReporter định nghĩa interface cho việc rà soát lượt ở quá hạn
type OverdueReporter interface {
	ReportOverdueStays(ctx context.Context) error
}

// CacheSweeper định nghĩa interface cho việc dọn cache danh sách
type CacheSweeper interface {
	SweepListCaches(ctx context.Context) error
}

var (
	overdueReporter OverdueReporter
	cacheSweeper    CacheSweeper
)

// SetOverdueReporter thiết lập implementation cho OverdueReporter
func SetOverdueReporter(reporter OverdueReporter) {
	overdueReporter = reporter
}

// SetCacheSweeper thiết lập implementation cho CacheSweeper
func SetCacheSweeper(sweeper CacheSweeper) {
	cacheSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang rà soát các lượt ở quá hạn lúc: %v", now)
		if overdueReporter == nil {
			log.Printf("Lỗi: OverdueReporter chưa được thiết lập")
			return
		}
		if err := overdueReporter.ReportOverdueStays(context.Background()); err != nil {
			log.Printf("Lỗi khi rà soát lượt ở quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Dọn cache danh sách mỗi giờ
	_, err = c.AddFunc("0 * * * *", func() {
		if cacheSweeper == nil {
			log.Printf("Lỗi: CacheSweeper chưa được thiết lập")
			return
		}
		if err := cacheSweeper.SweepListCaches(context.Background()); err != nil {
			log.Printf("Lỗi khi dọn cache danh sách: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
