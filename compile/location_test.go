package compile

import (
	"testing"

	"sbc/css"
)

func TestComposePositions(t *testing.T) {
	tests := []struct {
		name      string
		positions []css.Position
		want      css.Position
	}{
		{
			name:      "single position",
			positions: []css.Position{{Line: 7, Column: 2}},
			want:      css.Position{Line: 7, Column: 2},
		},
		{
			name:      "offset on first line shifts column",
			positions: []css.Position{{Line: 5, Column: 3}, {Line: 1, Column: 10}},
			want:      css.Position{Line: 5, Column: 12},
		},
		{
			name:      "offset on later line advances line and resets column",
			positions: []css.Position{{Line: 5, Column: 3}, {Line: 2, Column: 4}},
			want:      css.Position{Line: 6, Column: 4},
		},
		{
			name:      "chained offsets",
			positions: []css.Position{{Line: 2, Column: 2}, {Line: 1, Column: 3}, {Line: 3, Column: 1}},
			want:      css.Position{Line: 4, Column: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComposePositions(tc.positions...); got != tc.want {
				t.Errorf("ComposePositions() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNodePosition(t *testing.T) {
	rule := css.Position{Line: 5, Column: 3}
	node := css.Position{Line: 1, Column: 10}

	if got := nodePosition(rule, node); got == nil || *got != (css.Position{Line: 5, Column: 12}) {
		t.Errorf("nodePosition() = %v, want 5:12", got)
	}
	if got := nodePosition(css.Position{}, node); got != nil {
		t.Errorf("nodePosition() with unknown rule position = %v, want nil", got)
	}
	if got := nodePosition(rule, css.Position{}); got != nil {
		t.Errorf("nodePosition() with unknown node position = %v, want nil", got)
	}
}
