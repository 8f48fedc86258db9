package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is the document format version this build writes.
const DocumentVersion = "v1.0.0"

// ErrUnsupportedVersion is returned for documents from an incompatible
// major format version.
var ErrUnsupportedVersion = errors.New("unsupported catalog document version")

// Document is the serialized form of a catalog.
type Document struct {
	Version   string     `yaml:"version" json:"version"`
	Topics    []Topic    `yaml:"topics" json:"topics"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// ParseYAML decodes, schema-checks and validates a YAML catalog document.
func ParseYAML(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return New(doc.Topics, doc.Questions)
}

// EncodeYAML encodes the catalog as a versioned YAML document.
func (c *Catalog) EncodeYAML() ([]byte, error) {
	doc := Document{
		Version:   DocumentVersion,
		Topics:    c.Topics(),
		Questions: c.Questions(),
	}
	return yaml.Marshal(doc)
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(DocumentVersion) {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, v, semver.Major(DocumentVersion))
	}
	return nil
}
