package base64

import (
	"encoding/base64"
	"io"
	"log/slog"

	"github.com/compose-network/b64file/internal/logger"
	"github.com/spf13/afero"
)

// Reader loads files and decodes them as standard base64
type Reader struct {
	fs  afero.Fs
	log *slog.Logger
}

// NewReader creates a reader on top of the given filesystem
func NewReader(fs afero.Fs) *Reader {
	return &Reader{
		fs:  fs,
		log: logger.Named("base64_reader"),
	}
}

// Read returns the base64-decoded contents of path. The file is always
// treated as base64, whichever payload kind produced it. Filesystem and
// decoding errors (base64.CorruptInputError) are returned unmodified.
func (r *Reader) Read(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return nil, err
	}

	r.log.With("path", path, "encoded_bytes", len(data), "decoded_bytes", n).Debug("payload read")
	return decoded[:n], nil
}

// Read decodes the file at path on the OS filesystem.
func Read(path string) ([]byte, error) {
	return NewReader(afero.NewOsFs()).Read(path)
}
