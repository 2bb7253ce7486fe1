package css

import (
	"fmt"
	"io"
	"strings"
)

// Position is a 1-based line/column location in some text. The zero value
// means the location is unknown.
type Position struct {
	Line   int
	Column int
}

// IsZero reports whether the position is unknown.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Rule is a single qualified rule. Selector keeps the selector text exactly
// as authored (up to but not including the opening brace), Block keeps the
// raw declaration block including both braces. Rewriting replaces Selector
// only, Block is never touched.
type Rule struct {
	Selector string
	Pos      Position // position of the selector's first token in the source
	Block    string
}

// MediaBlock is an @media rule with its nested items.
type MediaBlock struct {
	Prelude string // raw text from "@media" up to the opening brace
	Items   []Item
}

// Item is a single stylesheet item. When both Rule and Media are nil the
// item is an opaque passthrough segment (comment, unknown at-rule,
// whitespace) kept verbatim.
type Item struct {
	Rule  *Rule
	Media *MediaBlock
	Raw   string
}

// Stylesheet is a scanned stylesheet. Serialization concatenates the raw
// text of all items, so a stylesheet that was not modified round-trips
// byte-identical to its source.
type Stylesheet struct {
	Items []Item
}

// Rules returns pointers to all rules in source order, including rules
// nested in @media blocks.
func (s *Stylesheet) Rules() []*Rule {
	var rules []*Rule
	collectRules(s.Items, &rules)
	return rules
}

func collectRules(items []Item, out *[]*Rule) {
	for i := range items {
		switch {
		case items[i].Rule != nil:
			*out = append(*out, items[i].Rule)
		case items[i].Media != nil:
			collectRules(items[i].Media.Items, out)
		}
	}
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Items {
		n, err := writeItem(w, &s.Items[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func writeItem(w io.Writer, item *Item) (int64, error) {
	var total int64

	write := func(text string) error {
		n, err := io.WriteString(w, text)
		total += int64(n)
		return err
	}

	switch {
	case item.Rule != nil:
		if err := write(item.Rule.Selector); err != nil {
			return total, err
		}
		return total, write(item.Rule.Block)

	case item.Media != nil:
		if err := write(item.Media.Prelude); err != nil {
			return total, err
		}
		if err := write("{"); err != nil {
			return total, err
		}
		for i := range item.Media.Items {
			n, err := writeItem(w, &item.Media.Items[i])
			total += n
			if err != nil {
				return total, err
			}
		}
		return total, write("}")

	default:
		return total, write(item.Raw)
	}
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
