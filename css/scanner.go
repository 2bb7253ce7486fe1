package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Scanner splits CSS text into qualified rules while preserving the raw text
// of everything else so a scanned stylesheet serializes back byte-identical.
type Scanner struct {
	log *zap.Logger
}

// NewScanner creates a new CSS scanner.
func NewScanner(log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{log: log.Named("css-scanner")}
}

// Scan scans CSS text into a Stylesheet. The optional source parameter
// identifies what is being scanned (for debug logging).
func (s *Scanner) Scan(data []byte, source ...string) *Stylesheet {
	if len(source) > 0 && source[0] != "" {
		s.log.Debug("Scanning CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	c := &cursor{
		lexer: css.NewLexer(parse.NewInput(bytes.NewReader(data))),
		pos:   Position{Line: 1, Column: 1},
	}
	sheet := &Stylesheet{Items: scanItems(c, false)}

	if err := c.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		s.log.Debug("CSS scan error", zap.Error(err))
	}
	return sheet
}

// tok is a single lexed token with its exact text and source position.
type tok struct {
	tt   css.TokenType
	data string
	pos  Position
}

// cursor walks lexer tokens keeping a 1-based line/column position.
type cursor struct {
	lexer *css.Lexer
	pos   Position
	eof   bool
}

func (c *cursor) next() (tok, bool) {
	if c.eof {
		return tok{}, false
	}
	tt, data := c.lexer.Next()
	if tt == css.ErrorToken {
		c.eof = true
		return tok{}, false
	}
	t := tok{tt: tt, data: string(data), pos: c.pos}
	c.pos = advance(c.pos, t.data)
	return t, true
}

func advance(pos Position, text string) Position {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// scanItems consumes tokens until EOF or, when inBlock is set, until the
// matching closing brace (which is consumed but not emitted - the caller
// serializes it from structure).
func scanItems(c *cursor, inBlock bool) []Item {
	var (
		items   []Item
		raw     strings.Builder
		prelude []tok
	)

	preludeText := func() string {
		var sb strings.Builder
		for _, t := range prelude {
			sb.WriteString(t.data)
		}
		prelude = prelude[:0]
		return sb.String()
	}
	flushRaw := func() {
		if raw.Len() > 0 {
			items = append(items, Item{Raw: raw.String()})
			raw.Reset()
		}
	}

	for {
		t, ok := c.next()
		if !ok {
			raw.WriteString(preludeText())
			flushRaw()
			return items
		}

		switch t.tt {
		case css.WhitespaceToken, css.CommentToken, css.CDOToken, css.CDCToken:
			// before any prelude token this is passthrough, after it becomes
			// part of the selector text
			if len(prelude) == 0 {
				raw.WriteString(t.data)
			} else {
				prelude = append(prelude, t)
			}

		case css.SemicolonToken:
			// at-rule without a block (@import, @charset) or a stray semicolon
			raw.WriteString(preludeText())
			raw.WriteString(t.data)

		case css.RightBraceToken:
			if inBlock {
				raw.WriteString(preludeText())
				flushRaw()
				return items
			}
			// unbalanced closing brace at top level, keep it verbatim
			raw.WriteString(preludeText())
			raw.WriteString(t.data)

		case css.LeftBraceToken:
			if len(prelude) == 0 {
				// block with no prelude, keep it verbatim
				raw.WriteString(t.data)
				raw.WriteString(rawUntilMatchingBrace(c))
				continue
			}
			if prelude[0].tt == css.AtKeywordToken {
				if strings.EqualFold(prelude[0].data, "@media") {
					flushRaw()
					items = append(items, Item{Media: &MediaBlock{
						Prelude: preludeText(),
						Items:   scanItems(c, true),
					}})
				} else {
					// any other at-rule with a block is passthrough
					raw.WriteString(preludeText())
					raw.WriteString(t.data)
					raw.WriteString(rawUntilMatchingBrace(c))
				}
				continue
			}
			// qualified rule
			pos := prelude[0].pos
			sel := preludeText()
			flushRaw()
			items = append(items, Item{Rule: &Rule{
				Selector: sel,
				Pos:      pos,
				Block:    t.data + rawUntilMatchingBrace(c),
			}})

		default:
			prelude = append(prelude, t)
		}
	}
}

// rawUntilMatchingBrace returns raw text up to and including the brace that
// closes an already consumed opening brace.
func rawUntilMatchingBrace(c *cursor) string {
	var sb strings.Builder
	depth := 1
	for {
		t, ok := c.next()
		if !ok {
			return sb.String()
		}
		switch t.tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
		sb.WriteString(t.data)
		if depth == 0 {
			return sb.String()
		}
	}
}
