// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package mockdata

import "github.com/tomtom215/tabularium/internal/models"

// categoryTable is the fixed five-entry category taxonomy. The ids, codes and
// counts are stable across the process lifetime; the dashboard hardcodes
// chart colors against them.
var categoryTable = []models.CategoryRecord{
	{ID: 1, Name: "Administrative Documents", Code: "ADMIN", Count: 25},
	{ID: 2, Name: "Financial Reports", Code: "FIN", Count: 150},
	{ID: 3, Name: "Personnel Files", Code: "HR", Count: 80},
	{ID: 4, Name: "Technical Documentation", Code: "TECH", Count: 32},
	{ID: 5, Name: "Project Materials", Code: "PROJ", Count: 45},
}

// Categories returns the category table. The result is a copy; callers may
// not mutate the canonical table.
func Categories() []models.CategoryRecord {
	out := make([]models.CategoryRecord, len(categoryTable))
	copy(out, categoryTable)
	return out
}
