// Package compile rewrites the block/state selector dialect into plain CSS.
// Selectors may mark the stylesheet's block identity (:block) or a named
// state (:state(name), :state(group.name)); both compile to generated class
// selectors, and every state discovered along the way is registered on the
// stylesheet's Block for downstream consumers.
package compile

import (
	"go.uber.org/zap"

	"sbc/css"
	"sbc/naming"
)

// Context carries per-stylesheet compilation inputs.
type Context struct {
	// SourcePath is the stylesheet file being compiled. It names the Block
	// and is attached to diagnostics.
	SourcePath string
}

// Compiler rewrites stylesheets. It is stateless across Process calls; all
// per-stylesheet state lives in the Block each call returns.
type Compiler struct {
	log    *zap.Logger
	naming *naming.Strategy
}

// NewCompiler creates a compiler using the given naming strategy.
func NewCompiler(strategy *naming.Strategy, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("compiler"), naming: strategy}
}

// Process rewrites every rule of the stylesheet in place and returns the
// Block with its full state registry. On error the stylesheet must be
// considered unusable - there is no partial output.
func (c *Compiler) Process(sheet *css.Stylesheet, pctx Context) (*Block, error) {
	if pctx.SourcePath == "" {
		return nil, missingSourcePath()
	}

	block := NewBlock(BlockNameFromPath(pctx.SourcePath))
	for _, rule := range sheet.Rules() {
		if err := c.processRule(rule, block); err != nil {
			return nil, enrichWithFile(err, pctx.SourcePath)
		}
	}

	c.log.Debug("Stylesheet compiled",
		zap.String("source", pctx.SourcePath),
		zap.String("block", block.Name()),
		zap.Int("states", len(block.States())))
	return block, nil
}

// replacement is one deferred node substitution collected during the
// read-only pass.
type replacement struct {
	nodes []*css.SelectorNode
	idx   int
	repl  *css.SelectorNode
}

func (c *Compiler) processRule(rule *css.Rule, block *Block) error {
	list, err := css.ParseSelector(rule.Selector)
	if err != nil {
		// tokenizer failures are not ours to decorate
		return err
	}

	// validation always runs against the unmodified selector
	for _, alt := range list.Alternatives {
		if err := validateSelector(alt, rule.Pos); err != nil {
			return err
		}
	}

	// phase one: read-only walk collecting substitutions
	var repls []replacement
	for _, alt := range list.Alternatives {
		for i, node := range alt.Nodes {
			if node.Type != css.NodePseudo {
				continue
			}
			switch node.Name {
			case blockMarker:
				repls = append(repls, replacement{
					nodes: alt.Nodes,
					idx:   i,
					repl:  css.ClassNode(block.ClassToken(c.naming)),
				})
			case stateMarker:
				info, err := parseStateArgs(node, rule.Pos)
				if err != nil {
					return err
				}
				state := block.EnsureState(info)
				repls = append(repls, replacement{
					nodes: alt.Nodes,
					idx:   i,
					repl:  css.ClassNode(state.ClassToken(c.naming)),
				})
			}
		}
	}
	if len(repls) == 0 {
		return nil
	}

	// phase two: apply, no traversal is active past this point
	for _, r := range repls {
		r.nodes[r.idx] = r.repl
	}
	rule.Selector = list.String()
	return nil
}
