package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	wallet   service.ClientWalletService
	registry service.ClientRegistryService
	accounts AccountManager

	artisans    []models.Artisan
	idx         int
	loading     bool
	refreshing  bool
	connecting  bool
	account     string
	showGuide   bool
	search      textinput.Model
	searching   bool
	categoryIdx int
	status      models.TransactionStatus
	notice      string
	noticeSeq   int
	alert       *alertModel
	formOpen    bool
	form        artisanFormModel
	spinner     spinner.Model
	copyText    func(string) error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, accounts AccountManager) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "Search artisans..."
	search.Prompt = "🔍 "
	search.Width = 32

	return mainLoopModel{
		ctx:      ctx,
		wallet:   services.WalletService,
		registry: services.RegistryService,
		accounts: accounts,
		account:  services.WalletService.Account(),
		status:   services.Status.Current(),
		loading:  true,
		search:   search,
		form:     newArtisanFormModel(),
		spinner:  s,
		copyText: clipboard.WriteAll,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadArtisans())
}

// capturesText reports whether key presses are currently typed into a field.
func (m mainLoopModel) capturesText() bool {
	return m.searching || (m.formOpen && m.form.focus != formFieldCategory)
}

func (m mainLoopModel) category() string {
	return models.Categories[m.categoryIdx]
}

func (m mainLoopModel) filtered() []models.Artisan {
	return service.FilterArtisans(m.artisans, models.ArtisanFilter{
		Search:   m.search.Value(),
		Category: m.category(),
	})
}

func (m mainLoopModel) current() (models.Artisan, bool) {
	list := m.filtered()
	if len(list) == 0 || m.idx < 0 || m.idx >= len(list) {
		return models.Artisan{}, false
	}
	return list[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	n := len(m.filtered())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainLoopModel) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case artisansLoadedMsg:
		m.loading = false
		m.refreshing = false
		m.artisans = msg.artisans
		m.clampIdx()
		return m, nil
	case walletConnectedMsg:
		m.connecting = false
		if msg.err != nil {
			m.alert = &alertModel{message: connectErrorMessage(msg.err)}
			return m, nil
		}
		m.account = msg.account
		return m, nil
	case accountChangedMsg:
		m.account = msg.account
		return m, nil
	case accountCreatedMsg:
		if msg.err != nil {
			cmd := m.setNotice("Account creation failed: " + msg.err.Error())
			return m, cmd
		}
		cmd := m.setNotice("New account " + shortAddress(msg.account))
		return m, cmd
	case statusChangedMsg:
		m.status = msg.status
		return m, nil
	case artisanAddedMsg:
		return m.handleArtisanAdded(msg)
	case closeFormMsg:
		m.formOpen = false
		m.form = newArtisanFormModel()
		return m, nil
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.alert != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.alert = nil
		}
		return m, nil
	}

	if m.loading {
		if key.Matches(keyMsg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.formOpen {
		return m.updateForm(keyMsg)
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.filtered())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.tab, keys.right):
		m.categoryIdx = (m.categoryIdx + 1) % len(models.Categories)
		m.idx = 0
	case key.Matches(keyMsg, keys.backtab, keys.left):
		m.categoryIdx = (m.categoryIdx - 1 + len(models.Categories)) % len(models.Categories)
		m.idx = 0
	case key.Matches(keyMsg, keys.resetFilter):
		m.search.SetValue("")
		m.categoryIdx = 0
		m.idx = 0
	case key.Matches(keyMsg, keys.guide):
		m.showGuide = !m.showGuide
	case key.Matches(keyMsg, keys.refresh):
		// refreshing only drives the indicator; overlapping loads are allowed
		m.refreshing = true
		return m, m.cmdLoadArtisans()
	case key.Matches(keyMsg, keys.connect):
		if m.connecting || m.account != "" {
			return m, nil
		}
		m.connecting = true
		return m, m.cmdConnect()
	case key.Matches(keyMsg, keys.disconnect):
		if m.account == "" {
			return m, nil
		}
		m.wallet.Disconnect()
		m.account = ""
		cmd := m.setNotice("Wallet disconnected")
		return m, cmd
	case key.Matches(keyMsg, keys.switchAcct):
		if m.accounts == nil {
			return m, nil
		}
		return m, m.cmdSwitchAccount()
	case key.Matches(keyMsg, keys.newAccount):
		if m.accounts == nil {
			return m, nil
		}
		return m, m.cmdCreateAccount()
	case key.Matches(keyMsg, keys.add):
		if m.account == "" {
			cmd := m.setNotice(app.UIConnectWallet)
			return m, cmd
		}
		m.form = newArtisanFormModel()
		m.formOpen = true
	case key.Matches(keyMsg, keys.refreshFHE):
		item, ok := m.current()
		if ok && service.IsOwner(m.account, item.Owner) {
			m.alert = &alertModel{message: app.UIRefreshFHE}
		}
	case key.Matches(keyMsg, keys.matchFHE):
		if _, ok := m.current(); ok {
			m.alert = &alertModel{message: app.UIMatchFHE}
		}
	case key.Matches(keyMsg, keys.copyID):
		return m.copyCurrent(func(a models.Artisan) string { return a.ID }, "Artisan id copied")
	case key.Matches(keyMsg, keys.copyOwner):
		return m.copyCurrent(func(a models.Artisan) string { return a.Owner }, "Owner address copied")
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "enter", "tab":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.idx = 0
	return m, cmd
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.done {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		if m.form.submitting {
			return m, nil
		}
		m.formOpen = false
		return m, nil
	}

	if m.form.wantsSubmit(keyMsg) {
		if m.form.submitting {
			return m, nil
		}
		if err := m.form.validate(); err != nil {
			m.alert = &alertModel{message: app.UIFillRequired}
			return m, nil
		}
		m.form.submitting = true
		return m, m.cmdAddArtisan(m.form.input())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) handleArtisanAdded(msg artisanAddedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false

	switch {
	case errors.Is(msg.err, service.ErrWalletNotConnected):
		m.alert = &alertModel{message: app.UIConnectWallet}
		return m, nil
	case errors.Is(msg.err, service.ErrRequiredFieldsMissing):
		m.alert = &alertModel{message: app.UIFillRequired}
		return m, nil
	case msg.err != nil:
		// The status banner carries the failure.
		return m, nil
	}

	m.form.done = true
	m.refreshing = true
	return m, tea.Batch(
		m.cmdLoadArtisans(),
		tea.Tick(service.SuccessStatusTTL, func(time.Time) tea.Msg { return closeFormMsg{} }),
	)
}

func (m mainLoopModel) copyCurrent(value func(models.Artisan) string, done string) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		cmd := m.setNotice("Nothing to copy")
		return m, cmd
	}
	if err := m.copyText(value(item)); err != nil {
		cmd := m.setNotice(fmt.Sprintf("Copy failed: %v", err))
		return m, cmd
	}
	cmd := m.setNotice(done)
	return m, cmd
}

func (m mainLoopModel) cmdLoadArtisans() tea.Cmd {
	ctx := m.ctx
	svc := m.registry

	return func() tea.Msg {
		return artisansLoadedMsg{artisans: svc.LoadAll(ctx)}
	}
}

func (m mainLoopModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	svc := m.wallet

	return func() tea.Msg {
		account, err := svc.Connect(ctx)
		return walletConnectedMsg{account: account, err: err}
	}
}

func (m mainLoopModel) cmdAddArtisan(input models.ArtisanInput) tea.Cmd {
	ctx := m.ctx
	svc := m.registry

	return func() tea.Msg {
		artisan, err := svc.AddArtisan(ctx, input)
		return artisanAddedMsg{artisan: artisan, err: err}
	}
}

// cmdSwitchAccount runs off the update loop because the wallet reports the
// change through a callback that sends a message back into the program.
func (m mainLoopModel) cmdSwitchAccount() tea.Cmd {
	accounts := m.accounts

	return func() tea.Msg {
		accounts.SwitchAccount()
		return nil
	}
}

func (m mainLoopModel) cmdCreateAccount() tea.Cmd {
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.CreateAccount()
		return accountCreatedMsg{account: account, err: err}
	}
}

func (m mainLoopModel) View() string {
	if m.loading {
		return renderPage("ArtisanMarket", m.spinner.View()+" "+app.UILoading, "q: quit")
	}

	if m.alert != nil {
		return renderPage("ArtisanMarket", m.alert.View(), "enter/esc: close")
	}

	if m.formOpen {
		out := m.form.View()
		if banner := m.viewStatus(); banner != "" {
			out = banner + "\n\n" + out
		}
		return out
	}

	var b strings.Builder

	b.WriteString(renderHeader(m.account))
	b.WriteString("\n")

	if banner := m.viewStatus(); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.showGuide {
		b.WriteString("\n")
		b.WriteString(renderGuide())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("   Category: < ")
	b.WriteString(accentStyle.Render(categoryLabel(m.category())))
	b.WriteString(" >")
	if m.refreshing {
		b.WriteString("   ")
		b.WriteString(m.spinner.View())
		b.WriteString(" refreshing")
	}
	b.WriteString("\n")
	b.WriteString(renderStats(m.artisans))
	b.WriteString("\n\n")
	b.WriteString(renderArtisanList(m.filtered(), m.idx, m.account))

	return renderPage("MARKETPLACE", b.String(), m.hotKeys())
}

func (m mainLoopModel) viewStatus() string {
	if !m.status.Visible {
		return ""
	}

	switch m.status.Status {
	case models.TxSuccess:
		return successStyle.Render("✓ " + m.status.Message)
	case models.TxError:
		return errorStyle.Render("✗ " + m.status.Message)
	default:
		return m.spinner.View() + " " + m.status.Message
	}
}

func (m mainLoopModel) hotKeys() string {
	if m.searching {
		return "type to search │ enter/esc: done"
	}

	wallet := "c: connect wallet"
	add := "a: add (connect wallet first)"
	if m.account != "" {
		wallet = "d: disconnect"
		add = "a: Add Your Artisan"
	}
	if m.accounts != nil {
		wallet += " │ s: switch account │ n: new account"
	}

	guide := "g: Show Guide"
	if m.showGuide {
		guide = "g: Hide Guide"
	}

	return strings.Join([]string{
		add,
		wallet,
		"/: search │ tab: category │ x: reset filters",
		"↑/↓: nav │ i/o: copy id/owner │ r: refresh │ " + guide + " │ v: about │ q: quit",
	}, "\n  ")
}
