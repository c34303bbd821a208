// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package mockdata

import (
	"testing"
	"time"
)

func TestArchiveStatsFixedValues(t *testing.T) {
	t.Parallel()

	stats := ArchiveStats()
	if stats.TotalCount != 100 {
		t.Errorf("totalCount = %d, want 100", stats.TotalCount)
	}
	if stats.BorrowedCount+stats.AvailableCount != stats.TotalCount {
		t.Errorf("borrowed (%d) + available (%d) != total (%d)",
			stats.BorrowedCount, stats.AvailableCount, stats.TotalCount)
	}
}

func TestBorrowTrendDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	trend := BorrowTrendFor(now)

	if len(trend.Dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(trend.Dates))
	}
	if trend.Dates[0] != "2024-03-09" {
		t.Errorf("first date = %s, want 2024-03-09", trend.Dates[0])
	}
	if trend.Dates[6] != "2024-03-15" {
		t.Errorf("last date = %s, want 2024-03-15", trend.Dates[6])
	}
	if len(trend.BorrowCounts) != 7 || len(trend.ReturnCounts) != 7 {
		t.Errorf("count series must cover all 7 days: %d borrow, %d return",
			len(trend.BorrowCounts), len(trend.ReturnCounts))
	}
}

func TestUserActivityHourlyProfile(t *testing.T) {
	t.Parallel()

	activity := UserActivityStats()
	if len(activity.HourlyActivity) != 24 {
		t.Fatalf("expected 24 hour buckets, got %d", len(activity.HourlyActivity))
	}
	if activity.HourlyActivity[0].Hour != "00:00" {
		t.Errorf("first bucket = %s, want 00:00", activity.HourlyActivity[0].Hour)
	}
	if activity.HourlyActivity[23].Hour != "23:00" {
		t.Errorf("last bucket = %s, want 23:00", activity.HourlyActivity[23].Hour)
	}
	if activity.HourlyActivity[10].Count != 42 {
		t.Errorf("peak hour count = %d, want 42", activity.HourlyActivity[10].Count)
	}
}

func TestFeedsAreStable(t *testing.T) {
	t.Parallel()

	if len(RecentActivities()) != 5 {
		t.Errorf("expected 5 recent activities, got %d", len(RecentActivities()))
	}
	if len(PendingTodos()) != 4 {
		t.Errorf("expected 4 pending todos, got %d", len(PendingTodos()))
	}

	types := map[string]bool{}
	for _, a := range RecentActivities() {
		types[a.Type] = true
	}
	for _, want := range []string{"borrow", "return", "archive", "update", "delete"} {
		if !types[want] {
			t.Errorf("activity feed missing type %q", want)
		}
	}
}
