// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/mock"
	"github.com/MKhiriev/kasa/internal/utils"
	"github.com/MKhiriev/kasa/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func hasTraceID(ctx context.Context) bool {
	_, ok := utils.GetTraceIDFromContext(ctx)
	return ok
}

func TestRootModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := newShell(context.Background(), mock.NewMockServerAdapter(ctrl), models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())

	assert.True(t, root.isMenuPage())

	model, _ := root.Update(NavigateTo{Page: "nowhere"})
	root = model.(RootModel)
	assert.True(t, root.isMenuPage())

	model, _ = root.Update(runes("v"))
	root = model.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.2.3")

	model, _ = root.Update(escKey)
	root = model.(RootModel)
	assert.False(t, root.showBuildInfo)

	model, cmd := root.Update(NavigateTo{Page: pageSalts})
	root = model.(RootModel)
	assert.False(t, root.isMenuPage())
	assert.NotNil(t, cmd)

	// v belongs to the menu only
	model, _ = root.Update(runes("v"))
	assert.False(t, model.(RootModel).showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := newShell(context.Background(), mock.NewMockServerAdapter(ctrl), models.AppBuildInfo{}, logger.Nop())

	model, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, model.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(downKey)
	assert.Nil(t, cmd)

	_, cmd = m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageSalts}, cmd())

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "Ciphers")
}

func newTestCipherList(t *testing.T) (*cipherListModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	return newCipherListModel(context.Background(), a, logger.Nop()), a
}

func loadedCiphers(m *cipherListModel, items ...models.CipherInfo) {
	m.Update(ciphersLoadedMsg{items: items})
}

func TestCipherList_LoadAndDecrypt(t *testing.T) {
	m, a := newTestCipherList(t)
	secret := "ghp_secret"

	a.EXPECT().ListCiphers(gomock.Any(), "").
		DoAndReturn(func(ctx context.Context, _ string) ([]models.CipherInfo, error) {
			assert.True(t, hasTraceID(ctx))
			return []models.CipherInfo{{ID: 4, Name: "github_token", Method: models.CipherAES256}}, nil
		})
	a.EXPECT().DecryptByID(gomock.Any(), int64(4)).
		Return(models.DecryptResult{DecryptedText: &secret, CipherID: 4, Name: "github_token", Method: models.CipherAES256, MatchesFound: 1}, nil)

	m.Init()
	m.Update(m.cmdLoad()())
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "github_token")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, cipherModeDetail, m.mode)
	assert.NotContains(t, m.View(), secret)
	assert.Contains(t, m.View(), maskedSecret)

	m.Update(runes("s"))
	assert.Contains(t, m.View(), secret)

	m.Update(escKey)
	assert.Equal(t, cipherModeList, m.mode)
	assert.Nil(t, m.detail.result.DecryptedText)
}

func TestCipherList_CopyToClipboard(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	m, _ := newTestCipherList(t)
	secret := "hunter2"
	m.Update(decryptedMsg{result: models.DecryptResult{DecryptedText: &secret, Name: "db"}})

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, secret, copied)
	assert.Equal(t, "Copied to clipboard", m.detail.status)
}

func TestCipherList_CopyFailureShowsOverlay(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = prev })

	m, _ := newTestCipherList(t)
	secret := "hunter2"
	m.Update(decryptedMsg{result: models.DecryptResult{DecryptedText: &secret, Name: "db"}})

	_, cmd := m.Update(runes("c"))
	m.Update(cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "no clipboard utility")
}

func TestCipherList_Create(t *testing.T) {
	m, a := newTestCipherList(t)
	a.EXPECT().CreateCipher(gomock.Any(), models.CreateCipherRequest{
		Name:      "github_token",
		Plaintext: "ghp_secret",
		Method:    models.CipherChaCha20,
	}).Return(models.CreateCipherResult{CipherID: 1, Name: "github_token", Method: models.CipherChaCha20, SaltIDUsed: 1}, nil)

	m.Update(runes("n"))
	require.Equal(t, cipherModeCreate, m.mode)

	// empty form is rejected locally
	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, errNameRequired.Error(), m.form.errMsg)

	m.form.inputs[formFieldName].SetValue(" github_token ")
	m.form.inputs[formFieldPlaintext].SetValue("ghp_secret")
	m.form.inputs[formFieldMethod].SetValue("ChaCha20")
	assert.NotContains(t, m.form.View(), "ghp_secret")

	_, cmd = m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m.Update(cmd())
	assert.Equal(t, cipherModeList, m.mode)
	assert.Contains(t, m.status, `"github_token"`)
}

func TestCipherForm_Request(t *testing.T) {
	tests := []struct {
		name     string
		fields   [3]string
		wantErr  error
		wantMeth models.CipherMethod
	}{
		{name: "missing name", fields: [3]string{"", "x", ""}, wantErr: errNameRequired},
		{name: "missing secret", fields: [3]string{"n", "", ""}, wantErr: errPlaintextRequired},
		{name: "unknown method", fields: [3]string{"n", "x", "des"}, wantErr: errUnknownMethod},
		{name: "server default", fields: [3]string{"n", "x", ""}},
		{name: "explicit", fields: [3]string{"n", "x", "aes128"}, wantMeth: models.CipherAES128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCipherFormModel()
			for i, v := range tt.fields {
				f.inputs[i].SetValue(v)
			}
			req, err := f.request()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeth, req.Method)
		})
	}
}

func TestCipherList_CreateNoFirstSalt(t *testing.T) {
	m, a := newTestCipherList(t)
	a.EXPECT().CreateCipher(gomock.Any(), gomock.Any()).
		Return(models.CreateCipherResult{}, &adapter.APIError{Status: http.StatusConflict, Kind: "NoFirstSalt", Message: "no first salt"})

	m.Update(runes("n"))
	m.form.inputs[formFieldName].SetValue("a")
	m.form.inputs[formFieldPlaintext].SetValue("b")
	_, cmd := m.Update(enterKey)
	m.Update(cmd())

	assert.Equal(t, cipherModeCreate, m.mode)
	assert.Contains(t, m.form.errMsg, "Salts page")
}

func TestCipherList_Search(t *testing.T) {
	m, a := newTestCipherList(t)
	a.EXPECT().ListCiphers(gomock.Any(), "git").Return([]models.CipherInfo{{ID: 2, Name: "github_token"}}, nil)

	m.Update(runes("/"))
	require.Equal(t, cipherModeSearch, m.mode)
	m.searchInput.SetValue(" git ")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "git", m.search)
	assert.Equal(t, cipherModeList, m.mode)
	assert.Contains(t, m.View(), `Filter: "git"`)
}

func TestCipherList_Delete(t *testing.T) {
	m, a := newTestCipherList(t)
	loadedCiphers(m, models.CipherInfo{ID: 1, Name: "a"}, models.CipherInfo{ID: 2, Name: "b"})
	a.EXPECT().DeleteCipher(gomock.Any(), int64(2)).Return(models.DeleteCipherResult{ID: 2, Name: "b"}, nil)

	m.Update(downKey)
	m.Update(runes("d"))
	require.Equal(t, cipherModeConfirm, m.mode)
	assert.Contains(t, m.View(), `Delete "b"?`)

	_, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, cipherModeList, m.mode)
	assert.Equal(t, `Cipher "b" deleted`, m.status)
}

func TestCipherList_DeleteCancelled(t *testing.T) {
	m, _ := newTestCipherList(t)
	loadedCiphers(m, models.CipherInfo{ID: 1, Name: "a"})

	m.Update(runes("d"))
	_, cmd := m.Update(runes("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, cipherModeList, m.mode)
}

func TestCipherList_ErrorOverlay(t *testing.T) {
	m, _ := newTestCipherList(t)

	m.Update(ciphersLoadedMsg{err: &adapter.APIError{Status: http.StatusServiceUnavailable, Kind: "StoreUnavailable", Message: "store unavailable"}})
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Server storage is unavailable")

	// keys other than enter and esc are swallowed by the overlay
	_, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, cipherModeList, m.mode)

	m.Update(escKey)
	assert.Nil(t, m.overlay)
}

func TestCipherList_EscNavigatesBack(t *testing.T) {
	m, _ := newTestCipherList(t)

	_, cmd := m.Update(escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func newTestSaltList(t *testing.T) (*saltListModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	return newSaltListModel(context.Background(), a, logger.Nop()), a
}

func TestSaltList_CreateAndFirst(t *testing.T) {
	m, a := newTestSaltList(t)
	a.EXPECT().ListSalts(gomock.Any()).Return([]models.SaltInfo{}, nil)
	a.EXPECT().CreateSalt(gomock.Any(), models.CreateSaltRequest{}).
		Return(models.SaltInfo{ID: 1, Method: models.SaltSHA256, ValuePreview: "00112233..."}, nil)
	a.EXPECT().FirstSalt(gomock.Any()).
		Return(models.SaltInfo{ID: 1, Method: models.SaltSHA256, ValuePreview: "00112233..."}, nil)

	cmd := m.Init()
	m.Update(cmd())
	assert.Contains(t, m.View(), "No salts")

	_, cmd = m.Update(runes("n"))
	m.Update(cmd())
	assert.Equal(t, "Salt 1 created (sha256)", m.status)

	_, cmd = m.Update(runes("f"))
	m.Update(cmd())
	assert.Contains(t, m.status, "First salt: 1")
}

func TestSaltList_DeleteInUse(t *testing.T) {
	m, a := newTestSaltList(t)
	m.Update(saltsLoadedMsg{items: []models.SaltInfo{{ID: 1, Method: models.SaltSHA256}}})
	a.EXPECT().DeleteSalt(gomock.Any(), int64(1)).
		Return(&adapter.APIError{Status: http.StatusConflict, Kind: "SaltInUse", Message: "salt 1 is used by 2 ciphers"})

	m.Update(runes("d"))
	require.True(t, m.confirming)

	_, cmd := m.Update(runes("y"))
	m.Update(cmd())

	assert.False(t, m.confirming)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "salt 1 is used by 2 ciphers")
}

func TestSystemModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	m := newSystemModel(context.Background(), a, logger.Nop())

	a.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{
		Status: "ok",
		Checks: map[string]string{"database": "ok", "cache": "ok"},
	}, nil)
	a.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	a.EXPECT().SyncCache(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (models.CacheSyncResult, error) {
			assert.True(t, hasTraceID(ctx))
			return models.CacheSyncResult{Salts: 1, Ciphers: 3}, nil
		})
	a.EXPECT().Backup(gomock.Any()).Return(models.BackupResult{}, &adapter.APIError{
		Status: http.StatusBadRequest, Kind: "InvalidRequest", Message: "backup storage is not configured",
	})

	cmd := m.Init()
	m.Update(cmd())
	view := m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "database:")

	_, cmd = m.Update(runes("s"))
	require.True(t, m.busy)
	m.Update(cmd())
	assert.Equal(t, "Cache synced: 1 salts, 3 ciphers", m.status)

	_, cmd = m.Update(runes("b"))
	m.Update(cmd())
	assert.Equal(t, "backup storage is not configured", m.errMsg)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"network", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "No network or the server is unavailable"},
		{"no first salt", &adapter.APIError{Kind: "NoFirstSalt", Message: "x"}, "No first salt yet: create a salt on the Salts page first"},
		{"api message", &adapter.APIError{Kind: "NotFound", Message: "cipher 9 not found"}, "cipher 9 not found"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
