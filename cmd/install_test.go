package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotinstall/internal/config"
	"dotinstall/internal/installer"
	"dotinstall/internal/logger"
)

const vimDescriptor = `name: vim
platform:
  Linux:
    src: ["~/dotfiles/vimrc"]
    dest: ["~/.vimrc"]
`

// setupHome points $HOME at a fresh directory holding a vim package.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	require.NoError(t, os.MkdirAll(filepath.Join(home, "dotfiles", "vim"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "dotfiles", "vim", "install.yaml"), []byte(vimDescriptor), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "dotfiles", "vimrc"), []byte("syntax on\n"), 0644))
	return home
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger.DisableColor()
	var out bytes.Buffer
	prev := logger.SetOutput(&out)
	defer logger.SetOutput(prev)

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func installArgs(home string, extra ...string) []string {
	args := []string{
		"install",
		"--root", filepath.Join(home, "dotfiles"),
		"--state", filepath.Join(home, "state", "state.json"),
		"--platform", "Linux",
	}
	return append(args, extra...)
}

func TestInstallFreshHome(t *testing.T) {
	home := setupHome(t)

	out, err := runCLI(t, "", installArgs(home)...)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(home, ".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, "syntax on\n", string(got))
	assert.Contains(t, out, "Installing vim on the Linux platform")
	assert.Contains(t, out, "[OK] Successfully copied")

	_, err = os.Stat(filepath.Join(home, "state", "state.json"))
	assert.NoError(t, err, "state file written")
}

func TestInstallSecondRunDeclined(t *testing.T) {
	home := setupHome(t)
	_, err := runCLI(t, "", installArgs(home)...)
	require.NoError(t, err)

	vimrc := filepath.Join(home, ".vimrc")
	require.NoError(t, os.WriteFile(vimrc, []byte("local edits\n"), 0644))

	out, err := runCLI(t, "n\n", installArgs(home)...)
	require.NoError(t, err)
	assert.Contains(t, out, "[WARN] File `"+vimrc+"` already exists")

	got, err := os.ReadFile(vimrc)
	require.NoError(t, err)
	assert.Equal(t, "local edits\n", string(got))
}

func TestInstallSecondRunConfirmed(t *testing.T) {
	home := setupHome(t)
	vimrc := filepath.Join(home, ".vimrc")
	require.NoError(t, os.WriteFile(vimrc, []byte("old\n"), 0644))

	_, err := runCLI(t, "Y\n", installArgs(home)...)
	require.NoError(t, err)

	got, err := os.ReadFile(vimrc)
	require.NoError(t, err)
	assert.Equal(t, "syntax on\n", string(got))
}

func TestInstallInvalidAnswerAborts(t *testing.T) {
	home := setupHome(t)
	vimrc := filepath.Join(home, ".vimrc")
	require.NoError(t, os.WriteFile(vimrc, []byte("old\n"), 0644))

	_, err := runCLI(t, "maybe\n", installArgs(home)...)
	assert.ErrorIs(t, err, installer.ErrInvalidInput)

	got, err := os.ReadFile(vimrc)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(got))
}

func TestInstallUnsupportedPlatform(t *testing.T) {
	home := setupHome(t)

	_, err := runCLI(t, "", append(installArgs(home), "--platform", "Windows")...)
	assert.ErrorIs(t, err, config.ErrUnsupportedPlatform)

	_, statErr := os.Stat(filepath.Join(home, ".vimrc"))
	assert.True(t, os.IsNotExist(statErr), "nothing copied")
}

func TestInstallWithoutState(t *testing.T) {
	home := setupHome(t)

	_, err := runCLI(t, "", installArgs(home, "--state", "")...)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, "state"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatusCommand(t *testing.T) {
	home := setupHome(t)
	statePath := filepath.Join(home, "state", "state.json")

	out, err := runCLI(t, "", "status", "--root", filepath.Join(home, "dotfiles"), "--state", statePath, "--platform", "Linux")
	require.NoError(t, err)
	assert.Contains(t, out, "vim (Linux)")
	assert.Contains(t, out, "missing")

	_, err = runCLI(t, "", installArgs(home)...)
	require.NoError(t, err)

	out, err = runCLI(t, "", "status", "--root", filepath.Join(home, "dotfiles"), "--state", statePath, "--platform", "Linux")
	require.NoError(t, err)
	assert.Contains(t, out, "installed")
}

func TestRootDefault(t *testing.T) {
	t.Setenv(envDotfilesRoot, "")
	assert.Equal(t, defaultRoot, rootDefault())

	t.Setenv(envDotfilesRoot, "/srv/dotfiles")
	assert.Equal(t, "/srv/dotfiles", rootDefault())
}
