package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/mock"
	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type harness struct {
	vault     *mock.MockClientVaultService
	keys      *mock.MockKeyChainService
	clipboard *fakeClipboard
	gotCfg    *config.ClientConfig
}

// clearConfigEnv hides NOTEVAULT_ variables of the host environment.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONFIG", "APP_LOG_LEVEL", "APP_LOG_FILE", "STORAGE_VAULT_PATH", "GENERATOR_LENGTH",
	} {
		t.Setenv(config.EnvPrefix+name, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+name))
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	clearConfigEnv(t)

	return &harness{
		vault:     mock.NewMockClientVaultService(ctrl),
		keys:      mock.NewMockKeyChainService(ctrl),
		clipboard: &fakeClipboard{},
	}
}

// run executes the command tree with input fed to the prompter and returns
// what was written to stdout.
func (h *harness) run(input string, args ...string) (string, error) {
	var out, prompts bytes.Buffer

	root := NewRootCommand(Options{
		Services: func(cfg *config.ClientConfig, _ *logger.Logger) (*service.ClientServices, error) {
			h.gotCfg = cfg
			return &service.ClientServices{KeyChain: h.keys, VaultService: h.vault}, nil
		},
		Prompter:  NewReaderPrompter(strings.NewReader(input), &prompts),
		Clipboard: h.clipboard,
		Build:     models.NewAppBuildInfo("1.2.3", "", "abc"),
	})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--vault", "/tmp/test.nv"}, args...))

	err := root.Execute()
	return out.String(), err
}

// expectSession expects an unlock with password and a final Close.
func (h *harness) expectSession(password string) {
	h.vault.EXPECT().Open(gomock.Any(), password).Return(nil)
	h.vault.EXPECT().Close()
}

// ── setup ─────────────────────────────────────────────────────────────────────

func TestRoot_PassesConfigToFactory(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Notes().Return(nil, nil)
	h.vault.EXPECT().IsDirty().Return(false)

	_, err := h.run("pw\n", "list", "--log-level", "debug")
	require.NoError(t, err)

	require.NotNil(t, h.gotCfg)
	assert.Equal(t, "/tmp/test.nv", h.gotCfg.Storage.VaultPath)
	assert.Equal(t, "debug", h.gotCfg.App.LogLevel)
}

func TestRoot_InvalidConfig(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "list", "--log-level", "chatty")
	assert.ErrorIs(t, err, config.ErrInvalidAppConfigs)
	assert.Nil(t, h.gotCfg)
}

func TestRoot_FactoryError(t *testing.T) {
	clearConfigEnv(t)
	root := NewRootCommand(Options{
		Services: func(*config.ClientConfig, *logger.Logger) (*service.ClientServices, error) {
			return nil, assert.AnError
		},
		Prompter: NewReaderPrompter(strings.NewReader(""), &bytes.Buffer{}),
	})
	root.SetArgs([]string{"--vault", "/tmp/x.nv", "list"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestVersion_SkipsSetup(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "version", "--log-level", "not-a-level")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: abc")
	assert.Nil(t, h.gotCfg)
}

// ── init ──────────────────────────────────────────────────────────────────────

func TestInit_CreatesVault(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().Create(gomock.Any(), "secret").Return(nil)
	h.vault.EXPECT().Path().Return("/tmp/test.nv")
	h.vault.EXPECT().Close()

	out, err := h.run("secret\nsecret\n", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "created /tmp/test.nv")
}

func TestInit_PasswordMismatch(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("secret\nsecreT\n", "init")
	assert.ErrorIs(t, err, app.ErrPasswordMismatch)
}

func TestInit_EmptyPassword(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("\n", "init")
	assert.ErrorIs(t, err, service.ErrEmptyPassword)
}

func TestInit_VaultExists(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().Create(gomock.Any(), "pw").Return(fmt.Errorf("%w: /tmp/test.nv", service.ErrVaultExists))

	_, err := h.run("pw\npw\n", "init")
	assert.ErrorIs(t, err, service.ErrVaultExists)
}

// ── read commands ─────────────────────────────────────────────────────────────

func TestList_PrintsNotes(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Notes().Return([]models.Note{
		{ID: 1, Title: "asdf"},
		{ID: 12, Title: "bla"},
	}, nil)
	h.vault.EXPECT().IsDirty().Return(false)

	out, err := h.run("pw\n", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1  asdf")
	assert.Contains(t, out, "12  bla")
}

func TestList_Empty(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Notes().Return([]models.Note{}, nil)
	h.vault.EXPECT().IsDirty().Return(false)

	out, err := h.run("pw\n", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "vault is empty")
}

func TestList_WrongPassword(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().Open(gomock.Any(), "bad").
		Return(fmt.Errorf("open vault: %w: %w", service.ErrWrongPassword, notefile.ErrEncryption))

	_, err := h.run("bad\n", "list")
	require.Error(t, err)
	assert.Contains(t, RenderError(err), app.MsgWrongPassword)
}

func TestShow_PrintsNote(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Note(uint64(2)).Return(models.Note{ID: 2, Title: "wifi", Message: "hunter2"}, nil)
	h.vault.EXPECT().IsDirty().Return(false)

	out, err := h.run("pw\n", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "wifi")
	assert.Contains(t, out, "hunter2")
}

func TestShow_NotFound(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Note(uint64(9)).Return(models.Note{}, service.ErrNoteNotFound)

	_, err := h.run("pw\n", "show", "9")
	assert.ErrorIs(t, err, service.ErrNoteNotFound)
}

func TestShow_BadID(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "show", "abc")
	assert.ErrorIs(t, err, app.ErrInvalidNoteID)
}

// ── write commands ────────────────────────────────────────────────────────────

func TestAdd_WithMessageFlag(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().AddNote("wifi", "hunter2").Return(models.Note{ID: 3, Title: "wifi", Message: "hunter2"}, nil)
	h.vault.EXPECT().IsDirty().Return(true)
	h.vault.EXPECT().Save(gomock.Any()).Return(nil)

	out, err := h.run("pw\n", "add", "--title", "wifi", "-m", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "added note 3")
}

func TestAdd_PromptsForMessage(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().AddNote("todo", "buy milk").Return(models.Note{ID: 1}, nil)
	h.vault.EXPECT().IsDirty().Return(true)
	h.vault.EXPECT().Save(gomock.Any()).Return(nil)

	_, err := h.run("pw\nbuy milk\n", "add", "-t", "todo")
	require.NoError(t, err)
}

func TestAdd_SaveFailureStillCloses(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().AddNote("a", "b").Return(models.Note{ID: 1}, nil)
	h.vault.EXPECT().IsDirty().Return(true)
	h.vault.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("save vault: %w", notefile.ErrIO))

	_, err := h.run("pw\n", "add", "-t", "a", "-m", "b")
	assert.ErrorIs(t, err, notefile.ErrIO)
}

func TestEdit_ChangesOnlyGivenFields(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Note(uint64(4)).Return(models.Note{ID: 4, Title: "old", Message: "keep"}, nil)
	h.vault.EXPECT().UpdateNote(models.Note{ID: 4, Title: "new", Message: "keep"}).Return(nil)
	h.vault.EXPECT().IsDirty().Return(true)
	h.vault.EXPECT().Save(gomock.Any()).Return(nil)

	out, err := h.run("pw\n", "edit", "4", "--title", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "updated note 4")
}

func TestEdit_RequiresAFlag(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("pw\n", "edit", "4")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().RemoveNote(uint64(5)).Return(nil)
	h.vault.EXPECT().IsDirty().Return(true)
	h.vault.EXPECT().Save(gomock.Any()).Return(nil)

	out, err := h.run("pw\n", "rm", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "removed note 5")
}

func TestPasswd(t *testing.T) {
	h := newHarness(t)
	h.expectSession("old")
	h.vault.EXPECT().ChangePassword(gomock.Any(), "new").Return(nil)
	h.vault.EXPECT().IsDirty().Return(false)

	out, err := h.run("old\nnew\nnew\n", "passwd")
	require.NoError(t, err)
	assert.Contains(t, out, "password changed")
}

func TestPasswd_Mismatch(t *testing.T) {
	h := newHarness(t)
	h.expectSession("old")

	_, err := h.run("old\nnew\nnope\n", "passwd")
	assert.ErrorIs(t, err, app.ErrPasswordMismatch)
}

// ── clipboard and generator ───────────────────────────────────────────────────

func TestCopy(t *testing.T) {
	h := newHarness(t)
	h.expectSession("pw")
	h.vault.EXPECT().Note(uint64(1)).Return(models.Note{ID: 1, Message: "s3cret"}, nil)
	h.vault.EXPECT().IsDirty().Return(false)

	_, err := h.run("pw\n", "copy", "1")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", h.clipboard.text)
}

func TestCopy_ClipboardUnavailable(t *testing.T) {
	h := newHarness(t)
	h.clipboard.err = fmt.Errorf("%w: no xclip", app.ErrClipboard)
	h.expectSession("pw")
	h.vault.EXPECT().Note(uint64(1)).Return(models.Note{ID: 1, Message: "s3cret"}, nil)

	_, err := h.run("pw\n", "copy", "1")
	assert.ErrorIs(t, err, app.ErrClipboard)
}

func TestGenpass_DefaultLength(t *testing.T) {
	h := newHarness(t)
	h.keys.EXPECT().GeneratePassword(config.DefaultGeneratorLength).Return("generated", nil)

	out, err := h.run("", "genpass")
	require.NoError(t, err)
	assert.Equal(t, "generated\n", out)
}

func TestGenpass_LengthAndCopy(t *testing.T) {
	h := newHarness(t)
	h.keys.EXPECT().GeneratePassword(8).Return("12345678", nil)

	out, err := h.run("", "genpass", "--length", "8", "--copy")
	require.NoError(t, err)
	assert.Equal(t, "12345678", h.clipboard.text)
	assert.NotContains(t, out, "12345678")
}

func TestGenpass_InvalidLength(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "genpass", "--length=-3")
	assert.ErrorIs(t, err, config.ErrInvalidGeneratorConfigs)
}

// ── rendering ─────────────────────────────────────────────────────────────────

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(fmt.Errorf("x: %w", notefile.ErrInvalidFile)), app.MsgInvalidFile)

	got := RenderError(errors.New("disk on fire"))
	assert.Contains(t, got, app.MsgUnexpected)
	assert.Contains(t, got, "disk on fire")
}
