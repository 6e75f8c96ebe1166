package controllers

import (
	"context"
	"testing"

	"hms/config"
)

func TestCacheSweeperWithoutRedis(t *testing.T) {
	prev := config.RedisClient
	config.RedisClient = nil
	defer func() { config.RedisClient = prev }()

	// không có Redis thì dọn cache là no-op, không được trả lỗi
	if err := NewCacheSweeper().SweepListCaches(context.Background()); err != nil {
		t.Errorf("SweepListCaches() error = %v, want nil", err)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{name: "first page", page: 0, limit: 2, want: []int{1, 2}},
		{name: "middle page", page: 1, limit: 2, want: []int{3, 4}},
		{name: "partial last page", page: 2, limit: 2, want: []int{5}},
		{name: "past the end", page: 9, limit: 2, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(items, tt.page, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("paginate() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paginate()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
