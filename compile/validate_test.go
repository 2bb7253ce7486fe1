package compile

import (
	"errors"
	"testing"

	"sbc/css"
)

func validate(t *testing.T, selector string) error {
	t.Helper()
	list, err := css.ParseSelector(selector)
	if err != nil {
		t.Fatalf("ParseSelector(%q) error = %v", selector, err)
	}
	for _, alt := range list.Alternatives {
		if err := validateSelector(alt, css.Position{Line: 1, Column: 1}); err != nil {
			return err
		}
	}
	return nil
}

func TestValidateSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{
			name:     "distinct states across descendant combinator",
			selector: ".x:state(a) .y:state(b)",
			wantErr:  true,
		},
		{
			name:     "distinct states across child combinator",
			selector: ".x:state(a)>.y:state(b)",
			wantErr:  true,
		},
		{
			name:     "distinct states across sibling combinator",
			selector: ".x:state(a)~.y:state(b)",
			wantErr:  true,
		},
		{
			name:     "distinct states across adjacent combinator",
			selector: ".x:state(a)+.y:state(b)",
			wantErr:  true,
		},
		{
			name:     "distinct states across column combinator",
			selector: ".x:state(a)||.y:state(b)",
			wantErr:  true,
		},
		{
			name:     "distinct grouped states across combinator",
			selector: ".x:state(theme.a) .y:state(theme.b)",
			wantErr:  true,
		},
		{
			name:     "grouped and ungrouped spelling of the same name differ",
			selector: ".x:state(a) .y:state(theme.a)",
			wantErr:  true,
		},
		{
			name:     "same state on both sides",
			selector: ".x:state(a) .y:state(a)",
			wantErr:  false,
		},
		{
			name:     "distinct states in one compound selector",
			selector: ".x:state(a):state(b)",
			wantErr:  false,
		},
		{
			name:     "single state with combinator",
			selector: ".x:state(a) .y",
			wantErr:  false,
		},
		{
			name:     "state on the right side only",
			selector: ".x .y:state(a)",
			wantErr:  false,
		},
		{
			name:     "no states at all",
			selector: "ul > li + li",
			wantErr:  false,
		},
		{
			name:     "distinct states in one compound with a combinator elsewhere",
			selector: ".x:state(a):state(b)>.y",
			wantErr:  true,
		},
		{
			name:     "alternatives are validated independently",
			selector: ".x:state(a), .y:state(b)",
			wantErr:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(t, tc.selector)
			if tc.wantErr && err == nil {
				t.Errorf("validateSelector(%q) expected error", tc.selector)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("validateSelector(%q) error = %v", tc.selector, err)
			}
		})
	}
}

func TestValidateSelectorError(t *testing.T) {
	err := validate(t, ".x:state(a) .y:state(b)")
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("validateSelector() error type = %T, want *Error", err)
	}
	if ce.Kind != ErrKindInvalidSyntax {
		t.Errorf("Error kind = %d, want ErrKindInvalidSyntax", ce.Kind)
	}
	if ce.Msg != "distinct states cannot be combined" {
		t.Errorf("Error message = %q", ce.Msg)
	}
	if ce.Pos == nil || *ce.Pos != (css.Position{Line: 1, Column: 1}) {
		t.Errorf("Error position = %v, want 1:1", ce.Pos)
	}
}

func TestValidateSelectorPropagatesStateErrors(t *testing.T) {
	err := validate(t, ".x:state() .y")
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("validateSelector() error type = %T, want *Error", err)
	}
	if ce.Msg != "state name is missing" {
		t.Errorf("Error message = %q, want \"state name is missing\"", ce.Msg)
	}
}
