package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/validators"
	"github.com/MKhiriev/artisan-market/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	formFieldName formField = iota
	formFieldCategory
	formFieldLocation
	formFieldStyle
	formFieldCount
)

const noCategoryLabel = "Select category"

// artisanFormModel is the "add artisan" form. Submission is driven by the
// main loop, which owns the services.
type artisanFormModel struct {
	name        textinput.Model
	location    textinput.Model
	style       textarea.Model
	categoryIdx int // 0 is "Select category", then models.ListingCategories
	focus       formField
	submitting  bool
	done        bool
	validator   validators.Validator
}

func newArtisanFormModel() artisanFormModel {
	name := textinput.New()
	name.Placeholder = "Your name or business name"
	name.Width = 40
	name.Focus()

	location := textinput.New()
	location.Placeholder = "City or region"
	location.Width = 40

	style := textarea.New()
	style.Placeholder = "Describe your artistic style (will be FHE encrypted)"
	style.SetWidth(48)
	style.SetHeight(4)
	style.ShowLineNumbers = false

	return artisanFormModel{
		name:      name,
		location:  location,
		style:     style,
		validator: validators.NewArtisanValidator(),
	}
}

func (f artisanFormModel) input() models.ArtisanInput {
	input := models.ArtisanInput{
		Name:     strings.TrimSpace(f.name.Value()),
		Location: strings.TrimSpace(f.location.Value()),
		Style:    strings.TrimSpace(f.style.Value()),
	}
	if f.categoryIdx > 0 {
		input.Category = models.ListingCategories[f.categoryIdx-1]
	}
	return input
}

func (f artisanFormModel) validate() error {
	return f.validator.Validate(context.Background(), f.input())
}

// wantsSubmit reports whether key submits the form. Enter inside the style
// area inserts a newline instead.
func (f artisanFormModel) wantsSubmit(k tea.KeyMsg) bool {
	if key.Matches(k, keys.submit) {
		return true
	}
	return key.Matches(k, keys.enter) && f.focus != formFieldStyle
}

func (f artisanFormModel) Update(msg tea.Msg) (artisanFormModel, tea.Cmd) {
	if f.submitting || f.done {
		return f, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab):
			return f.moveFocus(1), nil
		case key.Matches(k, keys.backtab):
			return f.moveFocus(-1), nil
		}

		if f.focus == formFieldCategory {
			switch k.String() {
			case "left", "h":
				f.categoryIdx = (f.categoryIdx + len(models.ListingCategories)) % (len(models.ListingCategories) + 1)
			case "right", "l", " ":
				f.categoryIdx = (f.categoryIdx + 1) % (len(models.ListingCategories) + 1)
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case formFieldName:
		f.name, cmd = f.name.Update(msg)
	case formFieldLocation:
		f.location, cmd = f.location.Update(msg)
	case formFieldStyle:
		f.style, cmd = f.style.Update(msg)
	}
	return f, cmd
}

func (f artisanFormModel) moveFocus(delta int) artisanFormModel {
	f.name.Blur()
	f.location.Blur()
	f.style.Blur()

	f.focus = formField((int(f.focus) + delta + int(formFieldCount)) % int(formFieldCount))

	switch f.focus {
	case formFieldName:
		f.name.Focus()
	case formFieldLocation:
		f.location.Focus()
	case formFieldStyle:
		f.style.Focus()
	}
	return f
}

func (f artisanFormModel) categoryView() string {
	label := noCategoryLabel
	if f.categoryIdx > 0 {
		label = categoryLabel(models.ListingCategories[f.categoryIdx-1])
	}
	if f.focus == formFieldCategory {
		return "< " + accentStyle.Render(label) + " >"
	}
	return "  " + label
}

func (f artisanFormModel) View() string {
	out := app.UIFHENotice + "\n\n"
	out += "Name *       : [ " + f.name.View() + " ]\n"
	out += "Category *   : " + f.categoryView() + "\n"
	out += "Location     : [ " + f.location.View() + " ]\n"
	out += "Style Preferences *\n"
	out += f.style.View() + "\n"

	switch {
	case f.done:
		out += "\n" + successStyle.Render(app.UIArtisanAdded) + "\n"
	case f.submitting:
		out += "\nEncrypting with FHE...\n"
	}

	return renderPage(
		"ADD YOUR ARTISAN PROFILE",
		strings.TrimRight(out, "\n"),
		"tab: next field │ ←/→: category │ enter/ctrl+s: submit securely │ esc: cancel",
	)
}
