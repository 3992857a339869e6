package handlers

import (
	"strconv"

	"github.com/cufit/cufit-backend/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func buildPaginationMeta(page, limit, total int) models.PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// pageParams reads ?page= and ?limit=. ok is false when neither is given,
// in which case listings are returned whole.
func pageParams(pageRaw, limitRaw string) (page, limit int, ok bool) {
	if pageRaw == "" && limitRaw == "" {
		return 0, 0, false
	}
	page = parsePositiveInt(pageRaw, 1)
	limit = parsePositiveInt(limitRaw, defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, true
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
