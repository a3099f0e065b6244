package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadContents(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    string
		kind    Kind
	}{
		{"binary is encoded", BinaryPayload("hello world"), "aGVsbG8gd29ybGQ=", KindBinary},
		{"empty binary", BinaryPayload{}, "", KindBinary},
		{"binary with padding", BinaryPayload{0x00, 0x01, 0x02, 0x03}, "AAECAw==", KindBinary},
		{"text passes through", TextPayload("hello world"), "hello world", KindText},
		{"text is not re-encoded", TextPayload("aGVsbG8="), "aGVsbG8=", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(tt.payload.Contents()))
			assert.Equal(t, tt.kind, tt.payload.Kind())
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("binary")
	require.NoError(t, err)
	assert.Equal(t, KindBinary, kind)

	kind, err = ParseKind(" Text ")
	require.NoError(t, err)
	assert.Equal(t, KindText, kind)

	_, err = ParseKind("json")
	assert.ErrorContains(t, err, "unknown payload kind")
}

func TestNewPayload(t *testing.T) {
	p, err := NewPayload(KindBinary, []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, BinaryPayload("hi"), p)

	p, err = NewPayload(KindText, []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, TextPayload("hi"), p)

	_, err = NewPayload(Kind("yaml"), nil)
	assert.Error(t, err)
}
