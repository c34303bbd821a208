// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package models

// Archive record statuses. Records cycle through these deterministically.
const (
	ArchiveStatusNormal   = "normal"
	ArchiveStatusBorrowed = "borrowed"
	ArchiveStatusArchived = "archived"
)

// ArchiveRecord is one synthetic archive row. Records are generated on demand
// and never stored; every field is a pure function of the record index, so
// repeated requests return byte-identical payloads.
type ArchiveRecord struct {
	ID              int    `json:"id"`
	ArchiveNo       string `json:"archiveNo"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	CategoryID      int    `json:"categoryId"`
	Description     string `json:"description"`
	Keywords        string `json:"keywords"`
	ArchiveDate     string `json:"archiveDate"`
	Status          string `json:"status"`
	StorageLocation string `json:"storageLocation"`
	CreateUser      string `json:"createUser"`
	CreateTime      string `json:"createTime"`
	UpdateTime      string `json:"updateTime"`
	FileCount       int    `json:"fileCount"`
	TotalSize       string `json:"totalSize"`
}

// ArchivePage is the paginated archive-list payload.
type ArchivePage struct {
	Records []ArchiveRecord `json:"records"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Size    int             `json:"size"`
	Pages   int             `json:"pages"`
}

// CategoryRecord is one entry of the fixed category table.
type CategoryRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// ArchiveStatistics is the payload of the archive-statistics endpoint.
type ArchiveStatistics struct {
	TotalCount     int `json:"totalCount"`
	TodayCount     int `json:"todayCount"`
	WeekCount      int `json:"weekCount"`
	MonthCount     int `json:"monthCount"`
	BorrowedCount  int `json:"borrowedCount"`
	AvailableCount int `json:"availableCount"`
	OverdueCount   int `json:"overdueCount"`
	ReservedCount  int `json:"reservedCount"`
}

// BorrowTrend is the seven-day borrow/return series for the dashboard chart.
type BorrowTrend struct {
	Dates        []string `json:"dates"`
	BorrowCounts []int    `json:"borrowCounts"`
	ReturnCounts []int    `json:"returnCounts"`
}

// HourlyActivity is one hour bucket of the user-activity heat strip.
type HourlyActivity struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// UserActivity is the payload of the user-activity statistics endpoint.
type UserActivity struct {
	ActiveUsers    int              `json:"activeUsers"`
	TotalUsers     int              `json:"totalUsers"`
	LoginCount     int              `json:"loginCount"`
	OperationCount int              `json:"operationCount"`
	HourlyActivity []HourlyActivity `json:"hourlyActivity"`
}

// Activity is one entry of the recent-activities feed.
type Activity struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	User   string `json:"user"`
	Action string `json:"action"`
	Target string `json:"target"`
	Time   string `json:"time"`
	Avatar string `json:"avatar"`
}

// Todo is one entry of the pending-todos list.
type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	Count       int    `json:"count"`
}

// CategoryStat is one name/count pair of the system-wide statistics payload.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SystemStatistics is the payload of the generic statistics endpoint.
type SystemStatistics struct {
	TotalArchives   int            `json:"totalArchives"`
	TotalCategories int            `json:"totalCategories"`
	TotalBorrowed   int            `json:"totalBorrowed"`
	TotalStorage    string         `json:"totalStorage"`
	MonthlyGrowth   int            `json:"monthlyGrowth"`
	CategoryStats   []CategoryStat `json:"categoryStats"`
}
