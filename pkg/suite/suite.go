// Package suite runs browser tests described in a YAML file
package suite

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	Suite struct {
		Name    string  `yaml:"name"`
		Classes []Class `yaml:"classes"`
	}

	Class struct {
		Name    string   `yaml:"name"`
		Markers []string `yaml:"markers"`
		Methods []Method `yaml:"methods"`
	}

	Method struct {
		Name    string   `yaml:"name"`
		Markers []string `yaml:"markers"`
		// URL page the test opens, no browser interaction when empty
		URL string `yaml:"url"`
		// Title expected substring of the page title
		Title string `yaml:"title"`
	}
)

func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read suite file")
	}
	return Load(bytes.NewReader(data))
}

func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := new(Suite)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("suite is empty")
		}
		return nil, errors.Wrap(err, "failed to decode suite")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Suite) validate() error {
	classes := make(map[string]bool, len(s.Classes))
	for _, c := range s.Classes {
		if c.Name == "" {
			return errors.New("class name must not be empty")
		}
		if classes[c.Name] {
			return errors.Errorf("duplicate class %s", c.Name)
		}
		classes[c.Name] = true

		methods := make(map[string]bool, len(c.Methods))
		for _, m := range c.Methods {
			if m.Name == "" {
				return errors.Errorf("class %s has method without a name", c.Name)
			}
			if methods[m.Name] {
				return errors.Errorf("duplicate method %s.%s", c.Name, m.Name)
			}
			methods[m.Name] = true
		}
	}
	return nil
}
