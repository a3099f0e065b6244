package inspect

import "gopkg.in/yaml.v3"

type (
	Report struct {
		File File `yaml:"file"`
	}

	File struct {
		Path         SingleQuotedString `yaml:"path"`
		EncodedBytes int64              `yaml:"encoded-bytes"`
		Base64       bool               `yaml:"base64"`
		DecodedBytes *int               `yaml:"decoded-bytes,omitempty"`
		DecodeError  string             `yaml:"decode-error,omitempty"`
	}

	SingleQuotedString string
)

func (s SingleQuotedString) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.SingleQuotedStyle,
		Value: string(s),
	}
	return node, nil
}
