package manifest

import (
	"bytes"

	"github.com/oneconcern/ros2ci/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrIncomplete indicates a repository without a name, a URL or a ref
var ErrIncomplete = errors.New("repository descriptor is incomplete")

// Manifest is a vcs repos file
type Manifest struct {
	Repositories yaml.MapSlice `yaml:"repositories"`
}

// Entry describes one repository in a repos file
type Entry struct {
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Version string `yaml:"version"`
}

// New builds a manifest listing the given git repositories, in order
func New(repos ...Repository) (*Manifest, error) {
	m := &Manifest{Repositories: make(yaml.MapSlice, 0, len(repos))}
	for _, r := range repos {
		if r.Name == "" || r.URL == "" || r.Ref == "" {
			return nil, errors.Newf("%s: %+v", ErrIncomplete, r).Wrap(ErrIncomplete)
		}
		m.Repositories = append(m.Repositories, yaml.MapItem{
			Key: r.Name,
			Value: Entry{
				Type:    "git",
				URL:     r.URL,
				Version: r.Ref,
			},
		})
	}
	return m, nil
}

// Bytes renders the manifest as YAML
func (m *Manifest) Bytes() ([]byte, error) {
	return yaml.Marshal(m)
}

// Reader renders the manifest, ready to be piped to vcs import
func (m *Manifest) Reader() (*bytes.Reader, error) {
	b, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
