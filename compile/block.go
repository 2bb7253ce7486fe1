package compile

import (
	"path/filepath"
	"strings"

	"sbc/naming"
)

// StateInfo is the decoded shape of a state marker argument. Group is empty
// for ungrouped states. Both fields are already whitespace-trimmed.
type StateInfo struct {
	Name  string
	Group string
}

// identity returns the comparison key used when collecting distinct states
// within one selector.
func (i StateInfo) identity() string {
	if i.Group != "" {
		return i.Group + " " + i.Name
	}
	return i.Name
}

type stateKey struct {
	group string
	name  string
}

// State is a named, optionally grouped styling variant of a block. Identity
// is immutable once created; States are only ever constructed through
// Block.EnsureState.
type State struct {
	block *Block
	group string
	name  string
}

// Name returns the state name.
func (s *State) Name() string { return s.name }

// Group returns the state group, empty for ungrouped states.
func (s *State) Group() string { return s.group }

// ClassToken returns the deterministic class name for this state.
func (s *State) ClassToken(strategy *naming.Strategy) string {
	return strategy.StateClass(s.block.name, s.group, s.name)
}

// Block is the semantic namespace of one compiled stylesheet. It owns the
// registry of its states.
type Block struct {
	name   string
	states map[stateKey]*State
	order  []*State
}

// NewBlock creates an empty block. The name is taken verbatim and never
// changes afterwards.
func NewBlock(name string) *Block {
	return &Block{name: name, states: make(map[stateKey]*State)}
}

// BlockNameFromPath derives a block name from a stylesheet path: the file
// base name with directory and extension stripped.
func BlockNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// ClassToken returns the deterministic class name for this block.
func (b *Block) ClassToken(strategy *naming.Strategy) string {
	return strategy.BlockClass(b.name)
}

// EnsureState returns the state with the given identity, creating it on
// first use. A second occurrence of the same identity returns the same
// *State, never a duplicate.
func (b *Block) EnsureState(info StateInfo) *State {
	key := stateKey{group: info.Group, name: info.Name}
	if s, ok := b.states[key]; ok {
		return s
	}
	s := &State{block: b, group: info.Group, name: info.Name}
	b.states[key] = s
	b.order = append(b.order, s)
	return s
}

// States returns all discovered states in creation order.
func (b *Block) States() []*State {
	out := make([]*State, len(b.order))
	copy(out, b.order)
	return out
}
