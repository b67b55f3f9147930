package installer

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotinstall/internal/config"
	"dotinstall/internal/state"
)

func TestInspect(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dotfiles/shell/install.yaml", `
name: shell
platform:
  Linux:
    src: [bashrc, zshrc, inputrc]
    dest: [/home/u/.bashrc, /home/u/.zshrc, /home/u/.inputrc]
`, 0644)
	writeFile(t, fs, "/home/u/.bashrc", "mine", 0644)
	writeFile(t, fs, "/home/u/.zshrc", "theirs", 0644)

	st := state.New()
	st.Record("shell", "/dotfiles/shell/bashrc", "/home/u/.bashrc", time.Now())

	loader := &config.Loader{Fs: fs, Platform: "Linux", Home: "/home/u"}
	report, err := Inspect(fs, "/dotfiles", loader, st)
	require.NoError(t, err)
	require.Len(t, report, 1)

	pkg := report[0]
	assert.Equal(t, "shell", pkg.Name)
	assert.Equal(t, "Linux", pkg.Platform)
	require.Len(t, pkg.Pairs, 3)
	assert.Equal(t, StatusInstalled, pkg.Pairs[0].Status)
	assert.Equal(t, StatusPresent, pkg.Pairs[1].Status)
	assert.Equal(t, StatusMissing, pkg.Pairs[2].Status)
	assert.Equal(t, "/dotfiles/shell/inputrc", pkg.Pairs[2].Src)

	exists, _ := afero.Exists(fs, "/home/u/.inputrc")
	assert.False(t, exists, "inspect never copies")
}

func TestInspectPropagatesLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dotfiles/install.yaml", "name: x\nplatform:\n  Darwin: {src: [a], dest: [b]}\n", 0644)

	loader := &config.Loader{Fs: fs, Platform: "Linux", Home: "/home/u"}
	_, err := Inspect(fs, "/dotfiles", loader, nil)
	assert.ErrorIs(t, err, config.ErrUnsupportedPlatform)
}
