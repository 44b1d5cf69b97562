package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorage = "/var/app/petclinic"

// run executes the root command against an in-memory filesystem.
func run(t *testing.T, memFs afero.Fs, args ...string) (string, error) {
	t.Helper()
	fs = memFs
	checkExists = false
	t.Cleanup(func() { fs = afero.NewOsFs() })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--storage", testStorage}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStoreResolveDelete(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/home/vet/rex.png", []byte("png bytes"), 0o644))

	out, err := run(t, memFs, "store", "/home/vet/rex.png")
	require.NoError(t, err)
	name := strings.TrimSpace(out)
	assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)

	stored, err := afero.ReadFile(memFs, filepath.Join(testStorage, name))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(stored))

	out, err = run(t, memFs, "resolve", "--exists", name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testStorage, name)+"\texists=true\n", out)

	_, err = run(t, memFs, "delete", name)
	require.NoError(t, err)

	out, err = run(t, memFs, "resolve", name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testStorage, name)+"\n", out)

	exists, err := afero.Exists(memFs, filepath.Join(testStorage, name))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_EmptyFile(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/home/vet/empty.jpg", nil, 0o644))

	out, err := run(t, memFs, "store", "/home/vet/empty.jpg")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing stored")

	infos, err := afero.ReadDir(memFs, testStorage)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStore_MissingFile(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "store", "/home/vet/missing.jpg")
	assert.Error(t, err)
}

func TestDelete_Idempotent(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "delete", "never-stored.jpg")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "petimages-cli v"+version+"\n", out)
}
