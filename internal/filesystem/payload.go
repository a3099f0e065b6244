package filesystem

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Kind names the variant of a Payload.
type Kind string

const (
	KindText   Kind = "text"
	KindBinary Kind = "binary"
)

// Payload is a value handed to a Writer. Implementations are limited to
// TextPayload and BinaryPayload.
type Payload interface {
	// Contents returns the bytes that end up on disk.
	Contents() []byte
	Kind() Kind
	sealed()
}

type (
	// TextPayload is persisted as its raw UTF-8 bytes, without encoding.
	TextPayload string

	// BinaryPayload is always persisted as standard base64.
	BinaryPayload []byte
)

func (p TextPayload) Contents() []byte {
	return []byte(p)
}

func (TextPayload) Kind() Kind {
	return KindText
}

func (TextPayload) sealed() {}

func (p BinaryPayload) Contents() []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(p)))
	base64.StdEncoding.Encode(out, p)
	return out
}

func (BinaryPayload) Kind() Kind {
	return KindBinary
}

func (BinaryPayload) sealed() {}

// ParseKind parses a payload kind name, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindText:
		return KindText, nil
	case KindBinary:
		return KindBinary, nil
	default:
		return "", fmt.Errorf("unknown payload kind %q: must be either 'text' or 'binary'", s)
	}
}

// NewPayload wraps data in the variant named by kind.
func NewPayload(kind Kind, data []byte) (Payload, error) {
	switch kind {
	case KindText:
		return TextPayload(data), nil
	case KindBinary:
		return BinaryPayload(data), nil
	default:
		return nil, fmt.Errorf("unknown payload kind %q", kind)
	}
}
