// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package mockdata

import (
	"fmt"

	"github.com/tomtom215/tabularium/internal/models"
)

// DefaultArchiveCount is the size of the full synthetic archive set. The
// list endpoint paginates over this fixed population regardless of page/size.
const DefaultArchiveCount = 100

var archiveStatuses = []string{
	models.ArchiveStatusNormal,
	models.ArchiveStatusBorrowed,
	models.ArchiveStatusArchived,
}

// Archives generates count synthetic archive records. Every field is derived
// from the 1-based record index alone - no randomness, no clock - so two
// calls with the same count produce byte-identical payloads. The frontend
// relies on that stability when diffing list pages.
func Archives(count int) []models.ArchiveRecord {
	records := make([]models.ArchiveRecord, 0, count)
	categories := Categories()

	for i := 1; i <= count; i++ {
		catIdx := i % len(categories)
		records = append(records, models.ArchiveRecord{
			ID:              i,
			ArchiveNo:       fmt.Sprintf("ARCH2024%06d", i),
			Title:           fmt.Sprintf("Archive Document #%d", i),
			Category:        categories[catIdx].Name,
			CategoryID:      catIdx + 1,
			Description:     fmt.Sprintf("Description for test archive #%d", i),
			Keywords:        fmt.Sprintf("keyword%d, test, archive", i),
			ArchiveDate:     fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			Status:          archiveStatuses[i%len(archiveStatuses)],
			StorageLocation: fmt.Sprintf("Zone A / Cabinet %d / Shelf %d", i, i%10),
			CreateUser:      "administrator",
			CreateTime:      fmt.Sprintf("2024-01-%02d 10:00:00", i%28+1),
			UpdateTime:      fmt.Sprintf("2024-01-%02d 10:00:00", i%28+1),
			FileCount:       i%10 + 1,
			TotalSize:       fmt.Sprintf("%.2fMB", float64(i)*1.5),
		})
	}

	return records
}

// Paginate slices records into a page. Non-positive page or size values are
// clamped to 1 rather than left undefined: a size of zero would otherwise
// divide by zero in the page count, and a negative page would index before
// the slice. The clamp is deliberate and covered by tests.
func Paginate(records []models.ArchiveRecord, page, size int) models.ArchivePage {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(records)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.ArchivePage{
		Records: records[start:end],
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   (total + size - 1) / size,
	}
}
