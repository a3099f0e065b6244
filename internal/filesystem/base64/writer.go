package base64

import (
	"log/slog"
	"os"

	"github.com/compose-network/b64file/internal/filesystem"
	"github.com/compose-network/b64file/internal/logger"
	"github.com/spf13/afero"
)

const fileMode os.FileMode = 0644

// Writer persists payloads, base64-encoding binary ones.
type Writer struct {
	fs  afero.Fs
	log *slog.Logger
}

// NewWriter creates a writer on top of the given filesystem
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{
		fs:  fs,
		log: logger.Named("base64_writer"),
	}
}

// Write creates or truncates path and stores the payload contents in it.
// Filesystem errors are returned unmodified and missing parent directories
// are not created.
func (w *Writer) Write(path string, payload filesystem.Payload) (err error) {
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	content := payload.Contents()
	if _, err := f.Write(content); err != nil {
		return err
	}

	w.log.With("path", path, "kind", payload.Kind(), "bytes", len(content)).Debug("payload written")
	return nil
}

// Write stores payload at path on the OS filesystem.
func Write(path string, payload filesystem.Payload) error {
	return NewWriter(afero.NewOsFs()).Write(path, payload)
}
