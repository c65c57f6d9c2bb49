package htmlparse

import "strings"

// rawTextElements are elements whose content is scanned verbatim up to the
// literal closing tag, per spec.md §4.1.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// SelfClosingTags is the fixed set of void elements, per spec.md §3.
var SelfClosingTags = map[string]bool{
	"AREA": true, "BASE": true, "BR": true, "COL": true, "COMMAND": true,
	"EMBED": true, "HR": true, "IMG": true, "INPUT": true, "KEYGEN": true,
	"LINK": true, "MENUITEM": true, "META": true, "PARAM": true,
	"SOURCE": true, "TRACK": true, "WBR": true,
}

// Tokenizer is a single-pass character scanner turning raw HTML bytes into
// a stream of Tokens.
type Tokenizer struct {
	src      string
	pos      int
	tagStack []string // lower-case tag names of open elements, for raw-text/code tracking
	buf      strings.Builder
	pending  []Token // tokens manufactured ahead of the current scan position
}

// NewTokenizer creates a Tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

func (t *Tokenizer) eof() bool { return t.pos >= len(t.src) }

func (t *Tokenizer) inCode() bool {
	for i := len(t.tagStack) - 1; i >= 0; i-- {
		if t.tagStack[i] == "code" {
			return true
		}
	}
	return false
}

// pending holds a token manufactured mid-scan (e.g. an explicit <br/> for a
// newline inside <code>, or the synthetic end tag after raw text) so Next
// can return one token at a time without re-entrant recursion.
func (t *Tokenizer) Next() (Token, bool) {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok, true
	}
	return t.next()
}

func (t *Tokenizer) next() (Token, bool) {
	t.buf.Reset()
	for !t.eof() {
		c := t.src[t.pos]
		if c == '<' {
			if t.buf.Len() > 0 {
				if txt, ok := t.flushText(); ok {
					return txt, true
				}
			}
			tok, ok := t.scanTag()
			if ok {
				return tok, true
			}
			continue
		}
		switch c {
		case '\n', '\r', '\t':
			if t.inCode() && c == '\n' {
				if t.buf.Len() > 0 {
					txt, ok := t.flushText()
					if ok {
						t.pos++ // consume the '\n'; its <br/> is queued in pending
						t.pending = append(t.pending, Token{Kind: TokenSelfClosing, Name: "BR"})
						return txt, true
					}
				}
				t.pos++
				return Token{Kind: TokenSelfClosing, Name: "BR"}, true
			}
			t.pos++
		default:
			t.buf.WriteByte(c)
			t.pos++
		}
	}
	if t.buf.Len() > 0 {
		return t.flushText()
	}
	return Token{}, false
}

func (t *Tokenizer) flushText() (Token, bool) {
	txt := strings.TrimSpace(t.buf.String())
	t.buf.Reset()
	if txt == "" {
		return Token{}, false
	}
	return Token{Kind: TokenText, Text: txt}, true
}

// scanTag consumes a '<...' construct: comment, doctype, end tag, or start
// tag (possibly raw-text or self-closing).
func (t *Tokenizer) scanTag() (Token, bool) {
	// t.src[t.pos] == '<'
	if strings.HasPrefix(t.src[t.pos:], "<!--") {
		return t.scanComment()
	}
	if strings.HasPrefix(t.src[t.pos:], "<!") {
		return t.scanDoctype()
	}
	if strings.HasPrefix(t.src[t.pos:], "</") {
		return t.scanEndTag()
	}
	return t.scanStartTag()
}

func (t *Tokenizer) scanComment() (Token, bool) {
	start := t.pos + 4
	end := strings.Index(t.src[start:], "-->")
	if end < 0 {
		content := t.src[start:]
		t.pos = len(t.src)
		return Token{Kind: TokenComment, Text: strings.TrimSpace(content)}, true
	}
	content := t.src[start : start+end]
	t.pos = start + end + 3
	return Token{Kind: TokenComment, Text: strings.TrimSpace(content)}, true
}

func (t *Tokenizer) scanDoctype() (Token, bool) {
	start := t.pos
	end := strings.IndexByte(t.src[start:], '>')
	if end < 0 {
		t.pos = len(t.src)
		return Token{Kind: TokenDoctype, Text: strings.TrimSpace(t.src[start+2:])}, true
	}
	content := t.src[start+2 : start+end]
	t.pos = start + end + 1
	return Token{Kind: TokenDoctype, Text: strings.TrimSpace(content)}, true
}

func (t *Tokenizer) scanEndTag() (Token, bool) {
	start := t.pos + 2
	end := strings.IndexByte(t.src[start:], '>')
	if end < 0 {
		t.pos = len(t.src)
		return Token{}, false
	}
	name := strings.TrimSpace(t.src[start : start+end])
	t.pos = start + end + 1
	if len(t.tagStack) > 0 && strings.EqualFold(t.tagStack[len(t.tagStack)-1], name) {
		t.tagStack = t.tagStack[:len(t.tagStack)-1]
	}
	return Token{Kind: TokenEndTag, Name: strings.ToUpper(name)}, true
}

func (t *Tokenizer) scanStartTag() (Token, bool) {
	start := t.pos + 1
	end := indexTagEnd(t.src, start)
	if end < 0 {
		t.pos = len(t.src)
		return Token{}, false
	}
	raw := strings.TrimRight(t.src[start:end], " \t\n\r")
	selfClose := strings.HasSuffix(raw, "/")
	if selfClose {
		raw = strings.TrimRight(raw[:len(raw)-1], " \t\n\r")
	}
	name, attrs := parseTagSource(raw)
	upper := strings.ToUpper(name)
	t.pos = end + 1

	if selfClose || SelfClosingTags[upper] {
		return Token{Kind: TokenSelfClosing, Name: upper, Attrs: attrs}, true
	}

	lower := strings.ToLower(name)
	if rawTextElements[lower] {
		startTok := Token{Kind: TokenStartTag, Name: upper, Attrs: attrs}
		closeLit := "</" + lower
		idx := indexFold(t.src, t.pos, closeLit)
		var text string
		if idx < 0 {
			text = t.src[t.pos:]
			t.pos = len(t.src)
		} else {
			text = t.src[t.pos:idx]
			gt := strings.IndexByte(t.src[idx:], '>')
			if gt < 0 {
				t.pos = len(t.src)
			} else {
				t.pos = idx + gt + 1
			}
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			t.pending = append(t.pending, Token{Kind: TokenText, Text: trimmed})
		}
		t.pending = append(t.pending, Token{Kind: TokenEndTag, Name: upper})
		return startTok, true
	}

	t.tagStack = append(t.tagStack, lower)
	return Token{Kind: TokenStartTag, Name: upper, Attrs: attrs}, true
}

// indexTagEnd finds the '>' that terminates a start tag, honoring quoted
// attribute values that may themselves contain '>'.
func indexTagEnd(src string, from int) int {
	inQuote := byte(0)
	for i := from; i < len(src); i++ {
		c := src[i]
		if inQuote != 0 {
			if c == inQuote {
				inQuote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			inQuote = c
		case '>':
			return i
		}
	}
	return -1
}

func indexFold(src string, from int, substr string) int {
	rel := strings.Index(strings.ToLower(src[from:]), strings.ToLower(substr))
	if rel < 0 {
		return -1
	}
	return from + rel
}

// parseTagSource parses "name attr1 attr2=\"v a l\" attr3='x'" into a tag
// name and an ordered attribute list, per spec.md §4.2.
func parseTagSource(raw string) (string, []Attribute) {
	i := 0
	n := len(raw)
	skipSpace := func() {
		for i < n && isSpace(raw[i]) {
			i++
		}
	}
	readBareToken := func() string {
		start := i
		for i < n && !isSpace(raw[i]) && raw[i] != '=' {
			i++
		}
		return raw[start:i]
	}

	skipSpace()
	name := readBareToken()

	var attrs []Attribute
	for {
		skipSpace()
		if i >= n {
			break
		}
		keyStart := i
		for i < n && !isSpace(raw[i]) && raw[i] != '=' {
			i++
		}
		key := collapseWhitespace(raw[keyStart:i])
		if key == "" {
			i++
			continue
		}
		skipSpace()
		if i < n && raw[i] == '=' {
			i++
			skipSpace()
			if i < n && (raw[i] == '"' || raw[i] == '\'') {
				quote := raw[i]
				i++
				valStart := i
				for i < n && raw[i] != quote {
					i++
				}
				val := raw[valStart:i]
				if i < n {
					i++ // consume closing quote
				}
				attrs = append(attrs, Attribute{Key: strings.ToLower(key), Val: val})
			} else {
				valStart := i
				for i < n && !isSpace(raw[i]) {
					i++
				}
				attrs = append(attrs, Attribute{Key: strings.ToLower(key), Val: raw[valStart:i]})
			}
		} else {
			attrs = append(attrs, Attribute{Key: strings.ToLower(key), Val: "true"})
		}
	}
	return name, attrs
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
