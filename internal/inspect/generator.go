package inspect

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/compose-network/b64file/internal/filesystem"
	b64 "github.com/compose-network/b64file/internal/filesystem/base64"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Generator struct {
	fs     afero.Fs
	reader filesystem.Reader
}

func NewGenerator(fs afero.Fs) *Generator {
	return &Generator{
		fs:     fs,
		reader: b64.NewReader(fs),
	}
}

// Generate describes the file at path. A file that is not valid base64 still
// yields a report; only filesystem errors are returned.
func (g *Generator) Generate(path string) (*Report, error) {
	info, err := g.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not stat file. Err: '%w'", err)
	}

	report := &Report{
		File: File{
			Path:         SingleQuotedString(path),
			EncodedBytes: info.Size(),
		},
	}

	decoded, err := g.reader.Read(path)
	var corrupt base64.CorruptInputError
	switch {
	case errors.As(err, &corrupt):
		report.File.DecodeError = corrupt.Error()
	case err != nil:
		return nil, fmt.Errorf("could not read file. Err: '%w'", err)
	default:
		report.File.Base64 = true
		n := len(decoded)
		report.File.DecodedBytes = &n
	}

	return report, nil
}

func Write(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("could not marshal report. Err: '%w'", err)
	}
	return enc.Close()
}
