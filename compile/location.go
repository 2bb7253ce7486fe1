package compile

import "sbc/css"

// ComposePositions reduces a list of 1-based positions left to right, each
// position interpreted relative to the text starting at the previously
// composed one. An offset that stays on line 1 only shifts the column; an
// offset on a later line advances the line and resets the column to its own.
func ComposePositions(positions ...css.Position) css.Position {
	var loc css.Position
	for i, pos := range positions {
		if i == 0 {
			loc = pos
			continue
		}
		if pos.Line == 1 {
			loc.Column += pos.Column - 1
		} else {
			loc.Line += pos.Line - 1
			loc.Column = pos.Column
		}
	}
	return loc
}

// nodePosition composes a rule's source start with a node's position inside
// the parsed selector text. It returns nil when either side lacks position
// metadata - a location is never fabricated.
func nodePosition(rulePos, nodePos css.Position) *css.Position {
	if rulePos.IsZero() || nodePos.IsZero() {
		return nil
	}
	loc := ComposePositions(rulePos, nodePos)
	return &loc
}
