// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"net/http"

	"github.com/tomtom215/tabularium/internal/mockdata"
	"github.com/tomtom215/tabularium/internal/models"
)

// Archives handles the archive list endpoints, including every sub-path the
// wildcard routes catch. The response is a page over the fixed synthetic
// population: same page and size always yield byte-identical records.
func (h *Handler) Archives(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", h.cfg.API.DefaultPageSize)

	records := mockdata.Archives(h.cfg.API.ArchiveCount)
	respondData(w, r, "query successful", mockdata.Paginate(records, page, size))
}

// ArchiveStats handles the archive statistics endpoints. This route is
// registered as a literal path so it wins over the archive wildcard.
func (h *Handler) ArchiveStats(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.ArchiveStats())
}

// Categories handles the category list endpoints. Alone among the list
// endpoints it reports its count in the envelope's total field beside the
// data array.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := mockdata.Categories()
	writeJSON(w, r, http.StatusOK, models.Envelope{
		Success:   true,
		Message:   "query successful",
		Data:      categories,
		Total:     len(categories),
		Timestamp: timestamp(),
	})
}

// SystemStats handles the system statistics endpoints.
func (h *Handler) SystemStats(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.SystemStats())
}
