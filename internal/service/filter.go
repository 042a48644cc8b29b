package service

import (
	"strings"

	"github.com/MKhiriev/artisan-market/models"
)

// FilterArtisans keeps the records whose name or location contains
// filter.Search (case-insensitive) and whose category equals
// filter.Category. An empty search term and the "all" category match
// everything. The relative order of list is preserved.
func FilterArtisans(list []models.Artisan, filter models.ArtisanFilter) []models.Artisan {
	term := strings.ToLower(filter.Search)
	out := make([]models.Artisan, 0, len(list))

	for _, a := range list {
		matchesSearch := strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Location), term)
		matchesCategory := filter.Category == "" ||
			filter.Category == models.CategoryAll ||
			a.Category == filter.Category

		if matchesSearch && matchesCategory {
			out = append(out, a)
		}
	}

	return out
}

// CountByCategory returns how many records carry category exactly.
func CountByCategory(list []models.Artisan, category string) int {
	n := 0
	for _, a := range list {
		if a.Category == category {
			n++
		}
	}
	return n
}

// IsOwner compares wallet addresses ignoring case. An empty account owns
// nothing.
func IsOwner(account, owner string) bool {
	if account == "" {
		return false
	}
	return strings.EqualFold(account, owner)
}
