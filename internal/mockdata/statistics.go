// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package mockdata

import (
	"fmt"
	"time"

	"github.com/tomtom215/tabularium/internal/models"
)

// ArchiveStats returns the fixed archive-statistics payload.
func ArchiveStats() models.ArchiveStatistics {
	return models.ArchiveStatistics{
		TotalCount:     100,
		TodayCount:     5,
		WeekCount:      23,
		MonthCount:     78,
		BorrowedCount:  15,
		AvailableCount: 85,
		OverdueCount:   3,
		ReservedCount:  8,
	}
}

// SystemStats returns the fixed system-wide statistics payload. The per
// category counts mirror the category table.
func SystemStats() models.SystemStatistics {
	categories := Categories()
	stats := make([]models.CategoryStat, 0, len(categories))
	for _, c := range categories {
		stats = append(stats, models.CategoryStat{Category: c.Name, Count: c.Count})
	}

	return models.SystemStatistics{
		TotalArchives:   100,
		TotalCategories: len(categories),
		TotalBorrowed:   15,
		TotalStorage:    "256.8MB",
		MonthlyGrowth:   12,
		CategoryStats:   stats,
	}
}

// BorrowTrendFor returns the seven-day borrow/return series ending at now.
// The dates track the clock (the chart always shows "the last week") but the
// counts are fixed; now is a parameter so tests can pin it.
func BorrowTrendFor(now time.Time) models.BorrowTrend {
	dates := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}

	return models.BorrowTrend{
		Dates:        dates,
		BorrowCounts: []int{12, 15, 8, 20, 18, 22, 16},
		ReturnCounts: []int{10, 13, 9, 18, 15, 20, 14},
	}
}

// hourlyCounts is the fixed 24-hour activity profile, midnight first.
var hourlyCounts = []int{
	5, 2, 1, 0, 0, 3, 8, 15, 28, 35, 42, 38,
	25, 20, 30, 35, 32, 28, 15, 10, 8, 5, 3, 2,
}

// UserActivityStats returns the fixed user-activity payload with its 24-hour
// activity profile.
func UserActivityStats() models.UserActivity {
	hourly := make([]models.HourlyActivity, 0, len(hourlyCounts))
	for hour, count := range hourlyCounts {
		hourly = append(hourly, models.HourlyActivity{
			Hour:  fmt.Sprintf("%02d:00", hour),
			Count: count,
		})
	}

	return models.UserActivity{
		ActiveUsers:    45,
		TotalUsers:     128,
		LoginCount:     256,
		OperationCount: 1580,
		HourlyActivity: hourly,
	}
}

// RecentActivities returns the fixed recent-activities feed.
func RecentActivities() []models.Activity {
	return []models.Activity{
		{ID: 1, Type: "borrow", User: "Alice Chen", Action: "borrowed archive", Target: "ARCH202400001 - Important Documents", Time: "2 minutes ago", Avatar: ""},
		{ID: 2, Type: "return", User: "Bob Lee", Action: "returned archive", Target: "ARCH202400015 - Financial Reports", Time: "15 minutes ago", Avatar: ""},
		{ID: 3, Type: "archive", User: "Carol Wang", Action: "added archive", Target: "ARCH202400102 - Project Materials", Time: "1 hour ago", Avatar: ""},
		{ID: 4, Type: "update", User: "David Zhao", Action: "updated archive details", Target: "ARCH202400045 - Technical Documentation", Time: "2 hours ago", Avatar: ""},
		{ID: 5, Type: "delete", User: "administrator", Action: "removed expired archive", Target: "ARCH202300088", Time: "3 hours ago", Avatar: ""},
	}
}

// PendingTodos returns the fixed pending-todos list.
func PendingTodos() []models.Todo {
	return []models.Todo{
		{ID: 1, Title: "Review borrow requests", Description: "3 borrow requests awaiting approval", Priority: "high", DueDate: "today", Status: "pending", Count: 3},
		{ID: 2, Title: "Handle overdue returns", Description: "2 archives are overdue", Priority: "urgent", DueDate: "overdue", Status: "pending", Count: 2},
		{ID: 3, Title: "Quarterly archive filing", Description: "Quarterly archive organization work", Priority: "medium", DueDate: "this week", Status: "pending", Count: 1},
		{ID: 4, Title: "System backup", Description: "Run the scheduled data backup", Priority: "low", DueDate: "this month", Status: "pending", Count: 1},
	}
}
