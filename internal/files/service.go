package files

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/compose-network/b64file/internal/filesystem"
	b64 "github.com/compose-network/b64file/internal/filesystem/base64"
	"github.com/compose-network/b64file/internal/inspect"
	"github.com/compose-network/b64file/internal/logger"
	"github.com/spf13/afero"
)

type Service struct {
	fs        afero.Fs
	writer    filesystem.Writer
	reader    filesystem.Reader
	generator *inspect.Generator
	log       *slog.Logger
}

func NewService(fs afero.Fs) *Service {
	return &Service{
		fs:        fs,
		writer:    b64.NewWriter(fs),
		reader:    b64.NewReader(fs),
		generator: inspect.NewGenerator(fs),
		log:       logger.Named("files"),
	}
}

// Write consumes src and stores it at path as a payload of the given kind.
func (s *Service) Write(path string, kind filesystem.Kind, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	payload, err := filesystem.NewPayload(kind, data)
	if err != nil {
		return err
	}

	if err := s.writer.Write(path, payload); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.log.With("path", path, "kind", kind, "input_bytes", len(data)).Info("payload stored")
	return nil
}

// Read decodes the file at path and copies the result to dst.
func (s *Service) Read(path string, dst io.Writer) error {
	data, err := s.reader.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	s.log.With("path", path, "decoded_bytes", len(data)).Info("payload loaded")
	return nil
}

// Export decodes the file at path into output. The output file is only
// created once decoding succeeded, so a failed read leaves it untouched.
func (s *Service) Export(path, output string) (err error) {
	data, err := s.reader.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	f, err := s.fs.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	s.log.With("path", path, "output", output, "decoded_bytes", len(data)).Info("payload exported")
	return nil
}

// Inspect writes a YAML report about the file at path to dst.
func (s *Service) Inspect(path string, dst io.Writer) error {
	report, err := s.generator.Generate(path)
	if err != nil {
		return err
	}
	return inspect.Write(dst, report)
}

// ReadSource returns the raw bytes of the file at path, used for --input.
func (s *Service) ReadSource(path string) (io.ReadCloser, error) {
	return s.fs.Open(path)
}
