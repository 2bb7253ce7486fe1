package compile

import (
	"strings"

	"sbc/css"
)

// Pseudo-class names that carry compiler meaning instead of browser
// semantics.
const (
	blockMarker = "block"
	stateMarker = "state"
)

// parseStateArgs decodes the argument shape of a state marker node. A valid
// marker has exactly one comma-separated argument group holding either a
// single name node, or group/separator/name. The separator is required by
// position only, its content is never inspected.
func parseStateArgs(node *css.SelectorNode, rulePos css.Position) (StateInfo, error) {
	loc := nodePosition(rulePos, node.Pos)

	if len(node.Args) == 0 {
		return StateInfo{}, invalidSyntax("state name is missing", loc)
	}
	if len(node.Args) > 1 {
		return StateInfo{}, invalidSyntax("invalid state declaration", loc)
	}

	args := node.Args[0]
	switch len(args) {
	case 1:
		return StateInfo{Name: strings.TrimSpace(args[0].Text)}, nil
	case 3:
		return StateInfo{
			Group: strings.TrimSpace(args[0].Text),
			Name:  strings.TrimSpace(args[2].Text),
		}, nil
	default:
		return StateInfo{}, invalidSyntax("invalid state declaration", loc)
	}
}
