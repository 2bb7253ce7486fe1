package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// NodeType discriminates selector nodes.
type NodeType int

const (
	NodeElement NodeType = iota
	NodeClass
	NodeID
	NodeAttribute
	NodePseudo
	NodeCombinator
	NodeWhitespace
	NodeComment
	NodeOther
)

// ArgNode is a single positioned text node inside a pseudo-class argument
// group. Whitespace between argument tokens is layout only and never
// produces a node.
type ArgNode struct {
	Text string
	Pos  Position
}

// SelectorNode is one node of a parsed selector. Raw keeps the exact source
// text so serialization reproduces the selector byte for byte.
type SelectorNode struct {
	Type NodeType
	Name string      // ident without its leading ./#/: sigil
	Args [][]ArgNode // pseudo-class argument groups, nil when there are no parentheses
	Raw  string
	Pos  Position // 1-based position within the selector text
}

// Alternative is one comma-separated alternative of a selector.
type Alternative struct {
	Nodes []*SelectorNode
}

// SelectorList is a parsed selector: comma-separated alternatives.
type SelectorList struct {
	Alternatives []*Alternative
}

// ClassNode builds a class selector node for the given class name.
func ClassNode(name string) *SelectorNode {
	return &SelectorNode{Type: NodeClass, Name: name, Raw: "." + name}
}

func (a *Alternative) String() string {
	var sb strings.Builder
	for _, n := range a.Nodes {
		sb.WriteString(n.Raw)
	}
	return sb.String()
}

func (l *SelectorList) String() string {
	parts := make([]string, 0, len(l.Alternatives))
	for _, alt := range l.Alternatives {
		parts = append(parts, alt.String())
	}
	return strings.Join(parts, ",")
}

// ParseSelector parses selector text into a node tree. Node positions are
// relative to the start of the text (line 1, column 1).
func ParseSelector(text string) (*SelectorList, error) {
	toks, err := lexSelector(text)
	if err != nil {
		return nil, err
	}

	p := &selParser{toks: toks}
	list := &SelectorList{}
	alt := &Alternative{}
	for {
		t, ok := p.peek()
		if !ok {
			break
		}
		if t.tt == css.CommaToken {
			p.take()
			list.Alternatives = append(list.Alternatives, alt)
			alt = &Alternative{}
			continue
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		alt.Nodes = append(alt.Nodes, node)
	}
	list.Alternatives = append(list.Alternatives, alt)
	return list, nil
}

func lexSelector(text string) ([]tok, error) {
	c := &cursor{
		lexer: css.NewLexer(parse.NewInputString(text)),
		pos:   Position{Line: 1, Column: 1},
	}
	var toks []tok
	for {
		t, ok := c.next()
		if !ok {
			break
		}
		toks = append(toks, t)
	}
	if err := c.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("selector tokenization failed: %w", err)
	}
	return toks, nil
}

type selParser struct {
	toks []tok
	i    int
}

func (p *selParser) peek() (tok, bool) {
	if p.i < len(p.toks) {
		return p.toks[p.i], true
	}
	return tok{}, false
}

func (p *selParser) take() tok {
	t := p.toks[p.i]
	p.i++
	return t
}

func (p *selParser) parseNode() (*SelectorNode, error) {
	t := p.take()
	switch t.tt {
	case css.WhitespaceToken:
		return &SelectorNode{Type: NodeWhitespace, Raw: t.data, Pos: t.pos}, nil

	case css.CommentToken:
		return &SelectorNode{Type: NodeComment, Raw: t.data, Pos: t.pos}, nil

	case css.IdentToken:
		return &SelectorNode{Type: NodeElement, Name: t.data, Raw: t.data, Pos: t.pos}, nil

	case css.HashToken:
		return &SelectorNode{Type: NodeID, Name: strings.TrimPrefix(t.data, "#"), Raw: t.data, Pos: t.pos}, nil

	case css.ColumnToken:
		return &SelectorNode{Type: NodeCombinator, Name: t.data, Raw: t.data, Pos: t.pos}, nil

	case css.DelimToken:
		switch t.data {
		case ">", "+", "~":
			return &SelectorNode{Type: NodeCombinator, Name: t.data, Raw: t.data, Pos: t.pos}, nil
		case ".":
			if n, ok := p.peek(); ok && n.tt == css.IdentToken {
				p.take()
				return &SelectorNode{Type: NodeClass, Name: n.data, Raw: t.data + n.data, Pos: t.pos}, nil
			}
			return &SelectorNode{Type: NodeOther, Raw: t.data, Pos: t.pos}, nil
		default:
			return &SelectorNode{Type: NodeOther, Raw: t.data, Pos: t.pos}, nil
		}

	case css.LeftBracketToken:
		return p.parseAttribute(t)

	case css.ColonToken:
		return p.parsePseudo(t)

	default:
		return &SelectorNode{Type: NodeOther, Raw: t.data, Pos: t.pos}, nil
	}
}

func (p *selParser) parseAttribute(open tok) (*SelectorNode, error) {
	var sb strings.Builder
	sb.WriteString(open.data)

	name := ""
	depth := 1
	for {
		t, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated attribute selector at %s", open.pos)
		}
		p.take()
		sb.WriteString(t.data)
		switch t.tt {
		case css.LeftBracketToken:
			depth++
		case css.RightBracketToken:
			depth--
			if depth == 0 {
				return &SelectorNode{Type: NodeAttribute, Name: name, Raw: sb.String(), Pos: open.pos}, nil
			}
		case css.IdentToken:
			if name == "" {
				name = t.data
			}
		}
	}
}

func (p *selParser) parsePseudo(colon tok) (*SelectorNode, error) {
	next, ok := p.peek()
	if !ok {
		return &SelectorNode{Type: NodeOther, Raw: colon.data, Pos: colon.pos}, nil
	}

	if next.tt == css.ColonToken {
		// pseudo-element, never carries compiler meaning
		p.take()
		raw := colon.data + next.data
		if t, ok := p.peek(); ok && (t.tt == css.IdentToken || t.tt == css.FunctionToken) {
			p.take()
			raw += t.data
			if t.tt == css.FunctionToken {
				argsRaw, _, err := p.parseArgs(colon.pos)
				if err != nil {
					return nil, err
				}
				raw += argsRaw
			}
		}
		return &SelectorNode{Type: NodeOther, Raw: raw, Pos: colon.pos}, nil
	}

	switch next.tt {
	case css.IdentToken:
		p.take()
		return &SelectorNode{Type: NodePseudo, Name: next.data, Raw: colon.data + next.data, Pos: colon.pos}, nil

	case css.FunctionToken:
		p.take()
		argsRaw, groups, err := p.parseArgs(colon.pos)
		if err != nil {
			return nil, err
		}
		return &SelectorNode{
			Type: NodePseudo,
			Name: strings.TrimSuffix(next.data, "("),
			Args: groups,
			Raw:  colon.data + next.data + argsRaw,
			Pos:  colon.pos,
		}, nil

	default:
		return &SelectorNode{Type: NodeOther, Raw: colon.data, Pos: colon.pos}, nil
	}
}

// parseArgs consumes tokens of an already opened pseudo-class argument list
// up to and including the matching closing parenthesis. It returns the raw
// consumed text and the comma-separated argument groups.
func (p *selParser) parseArgs(at Position) (string, [][]ArgNode, error) {
	var sb strings.Builder
	groups := make([][]ArgNode, 0, 1)
	var cur []ArgNode

	sawComma := false
	depth := 1
	for {
		t, ok := p.peek()
		if !ok {
			return "", nil, fmt.Errorf("unterminated pseudo-class arguments at %s", at)
		}
		p.take()
		sb.WriteString(t.data)

		switch t.tt {
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
			cur = append(cur, ArgNode{Text: t.data, Pos: t.pos})

		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				// an empty argument list produces no group at all
				if sawComma || len(cur) > 0 {
					groups = append(groups, cur)
				}
				return sb.String(), groups, nil
			}
			cur = append(cur, ArgNode{Text: t.data, Pos: t.pos})

		case css.CommaToken:
			if depth == 1 {
				groups = append(groups, cur)
				cur = nil
				sawComma = true
			} else {
				cur = append(cur, ArgNode{Text: t.data, Pos: t.pos})
			}

		case css.WhitespaceToken, css.CommentToken:
			// layout only

		default:
			cur = append(cur, ArgNode{Text: t.data, Pos: t.pos})
		}
	}
}
