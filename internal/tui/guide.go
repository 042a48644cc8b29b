package tui

import (
	"strings"
)

type guideStep struct {
	icon        string
	title       string
	description string
}

var guideSteps = []guideStep{
	{icon: "🔗", title: "Connect Wallet", description: "Connect your Web3 wallet to access the marketplace"},
	{icon: "🔍", title: "Browse Artisans", description: "Discover local artisans with FHE-protected recommendations"},
	{icon: "➕", title: "Add Your Artisan", description: "List your craft with encrypted style preferences"},
	{icon: "🔒", title: "Privacy First", description: "Your preferences remain encrypted during matching"},
}

func renderGuide() string {
	var b strings.Builder

	b.WriteString(viewTitle("How It Works"))
	b.WriteString("Discover local artisans while preserving your privacy\n\n")
	for _, step := range guideSteps {
		b.WriteString(step.icon)
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(step.title))
		b.WriteString("\n   ")
		b.WriteString(step.description)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderHeader(account string) string {
	out := titleStyle.Render("ArtisanMarket") + "  " + helpStyle.Render("Privacy-Preserving Local Crafts") + "\n"
	if account == "" {
		out += "Wallet: not connected"
	} else {
		out += "Wallet: " + accentStyle.Render(shortAddress(account))
	}
	return out
}
