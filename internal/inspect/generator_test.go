package inspect

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/valid", []byte("aGVsbG8gd29ybGQ="), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/raw", []byte{0x00, 0x01, 0x02}, 0644))
	require.NoError(t, afero.WriteFile(memFs, "/empty", nil, 0644))
	gen := NewGenerator(memFs)

	t.Run("valid base64", func(t *testing.T) {
		report, err := gen.Generate("/valid")
		require.NoError(t, err)
		assert.Equal(t, File{
			Path:         "/valid",
			EncodedBytes: 16,
			Base64:       true,
			DecodedBytes: intPtr(11),
		}, report.File)
	})

	t.Run("not base64", func(t *testing.T) {
		report, err := gen.Generate("/raw")
		require.NoError(t, err)
		assert.False(t, report.File.Base64)
		assert.Equal(t, int64(3), report.File.EncodedBytes)
		assert.Nil(t, report.File.DecodedBytes)
		assert.Contains(t, report.File.DecodeError, "illegal base64 data")
	})

	t.Run("empty file is valid base64", func(t *testing.T) {
		report, err := gen.Generate("/empty")
		require.NoError(t, err)
		assert.True(t, report.File.Base64)
		assert.Equal(t, intPtr(0), report.File.DecodedBytes)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, report))
		assert.Contains(t, buf.String(), "decoded-bytes: 0\n")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gen.Generate("/missing")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &Report{File: File{Path: "/data.b64", EncodedBytes: 4, Base64: true, DecodedBytes: intPtr(2)}})
	require.NoError(t, err)

	assert.Equal(t, "file:\n  path: '/data.b64'\n  encoded-bytes: 4\n  base64: true\n  decoded-bytes: 2\n", buf.String())
}

func intPtr(n int) *int {
	return &n
}
