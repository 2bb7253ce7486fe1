package compile

import (
	"errors"
	"testing"

	"sbc/css"
)

// stateNode parses selector text and returns its first state marker node.
func stateNode(t *testing.T, selector string) *css.SelectorNode {
	t.Helper()
	list, err := css.ParseSelector(selector)
	if err != nil {
		t.Fatalf("ParseSelector(%q) error = %v", selector, err)
	}
	for _, alt := range list.Alternatives {
		for _, node := range alt.Nodes {
			if node.Type == css.NodePseudo && node.Name == stateMarker {
				return node
			}
		}
	}
	t.Fatalf("No state marker in %q", selector)
	return nil
}

func TestParseStateArgs(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     StateInfo
	}{
		{
			name:     "plain name",
			selector: ".x:state(on)",
			want:     StateInfo{Name: "on"},
		},
		{
			name:     "grouped name",
			selector: ".x:state(theme.dark)",
			want:     StateInfo{Group: "theme", Name: "dark"},
		},
		{
			name:     "layout around nodes is trimmed",
			selector: ".x:state( theme . dark )",
			want:     StateInfo{Group: "theme", Name: "dark"},
		},
		{
			name:     "separator is positional only",
			selector: ".x:state(theme/dark)",
			want:     StateInfo{Group: "theme", Name: "dark"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseStateArgs(stateNode(t, tc.selector), css.Position{})
			if err != nil {
				t.Fatalf("parseStateArgs() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("parseStateArgs() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseStateArgsErrors(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		msg      string
	}{
		{
			name:     "marker without parentheses",
			selector: ".x:state",
			msg:      "state name is missing",
		},
		{
			name:     "empty parentheses",
			selector: ".x:state()",
			msg:      "state name is missing",
		},
		{
			name:     "multiple argument groups",
			selector: ".x:state(a, b)",
			msg:      "invalid state declaration",
		},
		{
			name:     "too many nodes",
			selector: ".x:state(a.b.c)",
			msg:      "invalid state declaration",
		},
		{
			name:     "two nodes",
			selector: ".x:state(a.)",
			msg:      "invalid state declaration",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseStateArgs(stateNode(t, tc.selector), css.Position{})
			if err == nil {
				t.Fatal("parseStateArgs() expected error")
			}
			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("parseStateArgs() error type = %T, want *Error", err)
			}
			if ce.Kind != ErrKindInvalidSyntax {
				t.Errorf("Error kind = %d, want ErrKindInvalidSyntax", ce.Kind)
			}
			if ce.Msg != tc.msg {
				t.Errorf("Error message = %q, want %q", ce.Msg, tc.msg)
			}
		})
	}
}

func TestParseStateArgsErrorPosition(t *testing.T) {
	node := stateNode(t, ".x:state()")
	_, err := parseStateArgs(node, css.Position{Line: 4, Column: 2})

	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("parseStateArgs() error type = %T, want *Error", err)
	}
	if ce.Pos == nil || *ce.Pos != (css.Position{Line: 4, Column: 4}) {
		t.Errorf("Error position = %v, want 4:4", ce.Pos)
	}

	// no rule position - no location, never a fabricated one
	_, err = parseStateArgs(node, css.Position{})
	if errors.As(err, &ce) && ce.Pos != nil {
		t.Errorf("Error position = %v, want nil", ce.Pos)
	}
}
