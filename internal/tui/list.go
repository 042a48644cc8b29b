package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/models"
)

// maxVisibleCards bounds how many cards are drawn around the cursor.
const maxVisibleCards = 4

func renderArtisanCard(a models.Artisan, account string, selected bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fitText(a.Name, 32)))
	b.WriteString("  [")
	b.WriteString(a.Category)
	b.WriteString("]\n")
	b.WriteString("📍 ")
	b.WriteString(a.Location)
	b.WriteString("\n")
	b.WriteString("Style:  ")
	b.WriteString(app.UIEncryptedField)
	b.WriteString("\n")
	b.WriteString("Rating: ")
	b.WriteString(app.UIEncryptedField)
	b.WriteString("\n")

	actions := "m: Match with FHE"
	if service.IsOwner(account, a.Owner) {
		actions = "f: Refresh FHE Data │ " + actions
	}
	b.WriteString(helpStyle.Render(actions))

	if selected {
		return selectedStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

// visibleWindow returns the [from, to) range of cards to draw so that idx
// stays on screen.
func visibleWindow(total, idx int) (int, int) {
	if total <= maxVisibleCards {
		return 0, total
	}
	from := idx - maxVisibleCards/2
	if from < 0 {
		from = 0
	}
	to := from + maxVisibleCards
	if to > total {
		to = total
		from = to - maxVisibleCards
	}
	return from, to
}

func renderArtisanList(list []models.Artisan, idx int, account string) string {
	if len(list) == 0 {
		return app.UINoResults + "\n" + helpStyle.Render("x: Reset Filters")
	}

	var b strings.Builder
	from, to := visibleWindow(len(list), idx)
	if from > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("↑ %d more", from)))
		b.WriteString("\n")
	}
	for i := from; i < to; i++ {
		b.WriteString(renderArtisanCard(list[i], account, i == idx))
		b.WriteString("\n")
	}
	if to < len(list) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("↓ %d more", len(list)-to)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(all []models.Artisan) string {
	return fmt.Sprintf(
		"Total Artisans: %d │ Pottery: %d │ Jewelry: %d │ Textile: %d",
		len(all),
		service.CountByCategory(all, models.CategoryPottery),
		service.CountByCategory(all, models.CategoryJewelry),
		service.CountByCategory(all, models.CategoryTextile),
	)
}
