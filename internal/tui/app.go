package tui

import (
	"github.com/MKhiriev/artisan-market/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the top of the TUI:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) shows wallet approval prompts above any page
// 4) delegates all other messages to the marketplace
type RootModel struct {
	main      mainLoopModel
	confirm   *confirmModel
	buildInfo models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel wraps the marketplace page.
func NewRootModel(main mainLoopModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		main:      main,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.main.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if req, ok := msg.(approvalRequestMsg); ok {
		if r.confirm != nil {
			// One write is signed at a time; a second request is refused.
			confirmModel{reply: req.reply}.answer(false)
			return r, nil
		}
		r.confirm = &confirmModel{address: req.address, key: req.key, reply: req.reply}
		r.showBuildInfo = false
		return r, nil
	}

	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.String() == "ctrl+c" {
			if r.confirm != nil {
				r.confirm.answer(false)
				r.confirm = nil
			}
			return r, tea.Quit
		}

		if r.confirm != nil {
			switch {
			case key.Matches(k, keys.yes):
				r.confirm.answer(true)
				r.confirm = nil
			case key.Matches(k, keys.no):
				r.confirm.answer(false)
				r.confirm = nil
			}
			return r, nil
		}

		switch k.String() {
		case "v":
			if !r.main.capturesText() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	updated, cmd := r.main.Update(msg)
	if main, ok := updated.(mainLoopModel); ok {
		r.main = main
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.confirm != nil {
		return appStyle.Render(renderPage("WALLET", r.confirm.View(), "y: approve │ n/esc: reject"))
	}
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	return appStyle.Render(r.main.View())
}
