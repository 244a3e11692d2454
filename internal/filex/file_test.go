package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir, err := EnsureSubDir("downloads")
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op.
	again, err := EnsureSubDir("downloads")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "hello.c", SafeFilename("hello.c"))
	assert.Equal(t, "passwd", SafeFilename("../../etc/passwd"))
	assert.Equal(t, "report.pdf", SafeFilename(`C:\temp\report.pdf`))

	generated := SafeFilename("")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	assert.NotEqual(t, "..", SafeFilename(".."))
}

func TestWriteBlob(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteBlob(dir, "hello.txt", []byte("Hello world\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hello.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello world\n"), data)
}
