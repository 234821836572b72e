package team

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// OverrideFile is the operator-maintained alias table, for example:
//
//	college:
//	  "App State Mountaineers": "Appalachian State"
type OverrideFile struct {
	College map[string]string `yaml:"college"`
}

// ParseOverrides decodes an alias table. Blank keys or values are rejected.
func ParseOverrides(r io.Reader) (OverrideFile, error) {
	var file OverrideFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return OverrideFile{}, nil
		}
		return OverrideFile{}, errors.Wrap(err, "decode team overrides")
	}
	for display, name := range file.College {
		if strings.TrimSpace(display) == "" || strings.TrimSpace(name) == "" {
			return OverrideFile{}, errors.Newf("team override %q -> %q: blank name", display, name)
		}
	}
	return file, nil
}

// WithOverrides layers extra college aliases over the built-in table.
// Aliases match the feed's display name exactly and win over built-in ones.
func (r *Resolver) WithOverrides(file OverrideFile) *Resolver {
	for display, name := range file.College {
		r.overrides[strings.TrimSpace(display)] = strings.TrimSpace(name)
	}
	return r
}
