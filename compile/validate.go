package compile

import "sbc/css"

// validateSelector walks one comma alternative once and rejects selectors
// that combine distinct state identities across a combinator. A combinator
// relates two positions in the DOM tree; with two different states across
// that boundary the compiled meaning would be ambiguous, so such selectors
// are refused instead of guessed at. Repeating the same state on both sides
// is allowed, as are several distinct states in a selector that has no
// combinators at all.
func validateSelector(alt *css.Alternative, rulePos css.Position) error {
	states := make(map[string]struct{})
	combinators := make(map[string]struct{})

	sawCompound := false // a simple selector has been seen since the last combinator
	pendingGap := false  // whitespace after a compound, descendant combinator if more follows

	for _, node := range alt.Nodes {
		switch node.Type {
		case css.NodeWhitespace:
			if sawCompound {
				pendingGap = true
			}

		case css.NodeComment:
			// layout only

		case css.NodeCombinator:
			combinators[node.Name] = struct{}{}
			sawCompound = false
			pendingGap = false

		default:
			if pendingGap {
				combinators[" "] = struct{}{}
				pendingGap = false
			}
			sawCompound = true
			if node.Type == css.NodePseudo && node.Name == stateMarker {
				info, err := parseStateArgs(node, rulePos)
				if err != nil {
					return err
				}
				states[info.identity()] = struct{}{}
			}
		}
	}

	if len(combinators) > 0 && len(states) > 1 {
		var pos css.Position
		if len(alt.Nodes) > 0 {
			pos = alt.Nodes[0].Pos
		}
		return invalidSyntax("distinct states cannot be combined", nodePosition(rulePos, pos))
	}
	return nil
}
