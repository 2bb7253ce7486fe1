// Package naming turns block and state identities into concrete CSS class
// names. Class names are produced by user-configurable templates; inputs are
// slugified first so any template output built from them is usable in a
// class selector.
package naming

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
)

// Default class name templates. The state template yields
// "block--state" or "block--group-state" for grouped states.
const (
	DefaultBlockTemplate = "{{.Block}}"
	DefaultStateTemplate = "{{.Block}}--{{with .Group}}{{.}}-{{end}}{{.State}}"
)

// Config describes class name generation. Templates are expanded with the
// slim-sprig function map over Values.
type Config struct {
	BlockTemplate string `yaml:"block_template"`
	StateTemplate string `yaml:"state_template"`
}

// Values is a struct that holds variables we make available for template
// expansion. Group is empty for ungrouped states.
type Values struct {
	Block string
	Group string
	State string
}

// Strategy produces class tokens. It is immutable once built and safe for
// concurrent use.
type Strategy struct {
	block *template.Template
	state *template.Template
}

// NewStrategy parses the configured templates. Empty template fields fall
// back to the defaults.
func NewStrategy(cfg Config) (*Strategy, error) {
	if cfg.BlockTemplate == "" {
		cfg.BlockTemplate = DefaultBlockTemplate
	}
	if cfg.StateTemplate == "" {
		cfg.StateTemplate = DefaultStateTemplate
	}

	funcMap := sprig.FuncMap()

	block, err := template.New("block_template").Funcs(funcMap).Parse(cfg.BlockTemplate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse block class template: %w", err)
	}
	state, err := template.New("state_template").Funcs(funcMap).Parse(cfg.StateTemplate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse state class template: %w", err)
	}
	return &Strategy{block: block, state: state}, nil
}

// BlockClass returns the class token for a block.
func (s *Strategy) BlockClass(block string) string {
	v := Values{Block: sanitize(block)}
	return expand(s.block, v, v.Block)
}

// StateClass returns the class token for a state of a block. group is empty
// for ungrouped states.
func (s *Strategy) StateClass(block, group, name string) string {
	v := Values{Block: sanitize(block), Group: sanitize(group), State: sanitize(name)}

	parts := make([]string, 0, 3)
	for _, p := range []string{v.Block, v.Group, v.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return expand(s.state, v, strings.Join(parts, "--"))
}

// expand executes the template falling back to a deterministic default name
// when expansion fails or produces nothing.
func expand(t *template.Template, v Values, fallback string) string {
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, v); err != nil {
		return fallback
	}
	if out := strings.TrimSpace(buf.String()); out != "" {
		return out
	}
	return fallback
}

func sanitize(s string) string {
	if s == "" {
		return ""
	}
	return slug.Make(s)
}
