package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/mock"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	owner    = "0x1111111111111111111111111111111111111111"
	stranger = "0x2222222222222222222222222222222222222222"
)

var testArtisans = []models.Artisan{
	{ID: "1-aaaaaaa", Name: "Clay Works", Category: models.CategoryPottery, Location: "Kyoto", Owner: owner},
	{ID: "2-bbbbbbb", Name: "Silver Leaf", Category: models.CategoryJewelry, Location: "Lisbon", Owner: stranger},
	{ID: "3-ccccccc", Name: "Loom House", Category: models.CategoryTextile, Location: "Kyoto", Owner: stranger},
}

type testDeps struct {
	wallet   *mock.MockClientWalletService
	registry *mock.MockClientRegistryService
}

func newTestMainLoop(t *testing.T) (mainLoopModel, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		wallet:   mock.NewMockClientWalletService(ctrl),
		registry: mock.NewMockClientRegistryService(ctrl),
	}
	deps.wallet.EXPECT().Account().Return("").AnyTimes()

	services := &service.ClientServices{
		WalletService:   deps.wallet,
		RegistryService: deps.registry,
		Status:          service.NewStatusTracker(),
	}
	return newMainLoopModel(context.Background(), services, nil), deps
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	next, ok := updated.(mainLoopModel)
	require.True(t, ok)
	return next, cmd
}

func press(t *testing.T, m mainLoopModel, presses ...string) mainLoopModel {
	t.Helper()

	for _, k := range presses {
		m, _ = update(t, m, keyPress(k))
	}
	return m
}

func loaded(t *testing.T, m mainLoopModel, account string) mainLoopModel {
	t.Helper()

	m, _ = update(t, m, artisansLoadedMsg{artisans: testArtisans})
	if account != "" {
		m, _ = update(t, m, accountChangedMsg{account: account})
	}
	return m
}

func names(list []models.Artisan) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}

func TestMainLoop_LoadingScreen(t *testing.T) {
	m, deps := newTestMainLoop(t)
	deps.registry.EXPECT().LoadAll(gomock.Any()).Return(testArtisans)

	assert.True(t, m.loading)
	assert.Contains(t, m.View(), app.UILoading)

	msg := m.cmdLoadArtisans()()
	m, _ = update(t, m, msg)

	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "Total Artisans: 3 │ Pottery: 1 │ Jewelry: 1 │ Textile: 1")
	assert.Contains(t, view, "Clay Works")
	assert.Contains(t, view, app.UIEncryptedField)
}

func TestMainLoop_CategoryCycling(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m = press(t, m, "tab")
	assert.Equal(t, models.CategoryPottery, m.category())
	assert.Equal(t, []string{"Clay Works"}, names(m.filtered()))

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, models.CategoryMetalwork, m.category())
	assert.Empty(t, m.filtered())
	assert.Contains(t, m.View(), app.UINoResults)

	m = press(t, m, "x")
	assert.Equal(t, models.CategoryAll, m.category())
	assert.Len(t, m.filtered(), 3)
}

func TestMainLoop_Search(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m = press(t, m, "/")
	require.True(t, m.searching)
	assert.True(t, m.capturesText())

	m = press(t, m, "KYO")
	assert.Equal(t, []string{"Clay Works", "Loom House"}, names(m.filtered()))

	m = press(t, m, "enter")
	assert.False(t, m.searching)
	assert.Equal(t, "KYO", m.search.Value())

	m = press(t, m, "x")
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.filtered(), 3)
}

func TestMainLoop_Navigation(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, 2, m.idx)

	m = press(t, m, "up")
	item, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "Silver Leaf", item.Name)

	m, _ = update(t, m, artisansLoadedMsg{artisans: testArtisans[:1]})
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_AddRequiresAccount(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m = press(t, m, "a")
	assert.False(t, m.formOpen)
	assert.Equal(t, app.UIConnectWallet, m.notice)
	assert.Contains(t, m.hotKeys(), "connect wallet first")
}

func TestMainLoop_AddArtisanFlow(t *testing.T) {
	m, deps := newTestMainLoop(t)
	m = loaded(t, m, owner)

	m = press(t, m, "a")
	require.True(t, m.formOpen)

	m = press(t, m, "enter")
	require.NotNil(t, m.alert)
	assert.Equal(t, app.UIFillRequired, m.alert.message)
	m = press(t, m, "esc")
	assert.Nil(t, m.alert)

	m = press(t, m, "Clay Works", "tab", "right", "tab", "Kyoto", "tab", "earthy glazes")

	want := models.ArtisanInput{
		Name:     "Clay Works",
		Category: models.CategoryPottery,
		Location: "Kyoto",
		Style:    "earthy glazes",
	}
	assert.Equal(t, want, m.form.input())

	deps.registry.EXPECT().AddArtisan(gomock.Any(), want).Return(models.Artisan{ID: "9-zzzzzzz"}, nil)
	deps.registry.EXPECT().LoadAll(gomock.Any()).Return(testArtisans)

	m, cmd := update(t, m, keyPress("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m, cmd = update(t, m, cmd())
	require.NotNil(t, cmd)
	assert.True(t, m.form.done)
	assert.True(t, m.refreshing)
	assert.True(t, m.formOpen)

	reload := m.cmdLoadArtisans()()
	m, _ = update(t, m, reload)
	assert.False(t, m.refreshing)

	m, _ = update(t, m, closeFormMsg{})
	assert.False(t, m.formOpen)
	assert.Empty(t, m.form.input().Name)
}

func TestMainLoop_AddArtisanFailures(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantAlert string
	}{
		{name: "wallet gone", err: service.ErrWalletNotConnected, wantAlert: app.UIConnectWallet},
		{name: "missing fields", err: service.ErrRequiredFieldsMissing, wantAlert: app.UIFillRequired},
		{name: "rejected", err: errors.New("user rejected transaction")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMainLoop(t)
			m = loaded(t, m, owner)
			m = press(t, m, "a")
			m.form.submitting = true

			m, cmd := update(t, m, artisanAddedMsg{err: tt.err})
			assert.Nil(t, cmd)
			assert.False(t, m.form.submitting)
			assert.False(t, m.form.done)
			assert.True(t, m.formOpen)

			if tt.wantAlert == "" {
				assert.Nil(t, m.alert)
				return
			}
			require.NotNil(t, m.alert)
			assert.Equal(t, tt.wantAlert, m.alert.message)
		})
	}
}

func TestMainLoop_ConnectAndDisconnect(t *testing.T) {
	m, deps := newTestMainLoop(t)
	m = loaded(t, m, "")

	deps.wallet.EXPECT().Connect(gomock.Any()).Return("", fmt.Errorf("%w: %w", service.ErrConnectWallet, errors.New("boom")))
	m, cmd := update(t, m, keyPress("c"))
	require.NotNil(t, cmd)
	assert.True(t, m.connecting)

	m, _ = update(t, m, cmd())
	require.NotNil(t, m.alert)
	assert.Equal(t, app.UIConnectFailed+"\nboom", m.alert.message)
	m = press(t, m, "enter")

	deps.wallet.EXPECT().Connect(gomock.Any()).Return(owner, nil)
	m, cmd = update(t, m, keyPress("c"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, owner, m.account)
	assert.Contains(t, m.View(), shortAddress(owner))

	deps.wallet.EXPECT().Disconnect()
	m = press(t, m, "d")
	assert.Empty(t, m.account)
	assert.Equal(t, "Wallet disconnected", m.notice)
}

func TestMainLoop_FHEActions(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, owner)

	m = press(t, m, "f")
	require.NotNil(t, m.alert)
	assert.Equal(t, app.UIRefreshFHE, m.alert.message)
	m = press(t, m, "esc")

	m = press(t, m, "down", "f")
	assert.Nil(t, m.alert, "refresh is owner only")

	m = press(t, m, "m")
	require.NotNil(t, m.alert)
	assert.Equal(t, app.UIMatchFHE, m.alert.message)
}

func TestMainLoop_Copy(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	var copied []string
	m.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	m = press(t, m, "i", "down", "o")
	assert.Equal(t, []string{"1-aaaaaaa", stranger}, copied)
	assert.Equal(t, "Owner address copied", m.notice)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "i")
	assert.Equal(t, "Copy failed: no clipboard", m.notice)
}

func TestMainLoop_NoticeExpiresBySequence(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m = press(t, m, "a")
	first := m.noticeSeq
	m = press(t, m, "a")

	m, _ = update(t, m, clearNoticeMsg{seq: first})
	assert.Equal(t, app.UIConnectWallet, m.notice)

	m, _ = update(t, m, clearNoticeMsg{seq: m.noticeSeq})
	assert.Empty(t, m.notice)
}

func TestMainLoop_StatusBanner(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	m, _ = update(t, m, statusChangedMsg{status: models.TransactionStatus{Visible: true, Status: models.TxError, Message: app.UITxRejected}})
	assert.Contains(t, m.viewStatus(), "✗ "+app.UITxRejected)

	m, _ = update(t, m, statusChangedMsg{status: models.HiddenStatus})
	assert.Empty(t, m.viewStatus())
}

func TestMainLoop_Guide(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m = loaded(t, m, "")

	assert.NotContains(t, m.View(), "How It Works")
	m = press(t, m, "g")
	assert.Contains(t, m.View(), "How It Works")
	assert.Contains(t, m.hotKeys(), "Hide Guide")
}

func TestMainLoop_RefreshWhileRefreshing(t *testing.T) {
	m, deps := newTestMainLoop(t)
	m = loaded(t, m, "")

	deps.registry.EXPECT().LoadAll(gomock.Any()).Return(testArtisans).Times(2)

	m, first := update(t, m, keyPress("r"))
	require.NotNil(t, first)
	assert.True(t, m.refreshing)

	m, second := update(t, m, keyPress("r"))
	require.NotNil(t, second, "a second refresh starts while the first is running")

	m, _ = update(t, m, first())
	m, _ = update(t, m, second())
	assert.False(t, m.refreshing)
	assert.Len(t, m.artisans, len(testArtisans))
}
