package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoad(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, fs.Save("doc.json", in))

	out := make(map[string]int)
	require.NoError(t, fs.Load("doc.json", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	out := map[string]int{"keep": 1}
	require.NoError(t, fs.Load("missing.json", &out), "文件不存在不应报错")
	assert.Equal(t, map[string]int{"keep": 1}, out, "不应修改out")
}

func TestFileStoreAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save("doc.json", map[string]string{"v": "1"}))
	require.NoError(t, fs.Save("doc.json", map[string]string{"v": "2"}))

	out := make(map[string]string)
	require.NoError(t, fs.Load("doc.json", &out))
	assert.Equal(t, "2", out["v"])

	// 不应残留临时文件
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreEmptyDataDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
