package css

import "strings"

// Declaration is a single `key: value [!important];` pair.
type Declaration struct {
	Key       string
	Value     Value
	Important bool
}

// StyleRule is a selector paired with its declaration block, per spec.md §3.
type StyleRule struct {
	Selector     Selector
	Declarations []Declaration
	OriginIndex  int
}

// Scanner turns raw CSS text into StyleRules, per spec.md §4.3: a
// character scanner cycling through selector-capture, inside-block,
// inside-declaration-value, comment, string, and at-rule states.
type Scanner struct {
	src    string
	pos    int
	origin int
}

// NewScanner creates a Scanner over src.
func NewScanner(src string) *Scanner { return &Scanner{src: stripComments(src)} }

// ScanRules scans the whole stylesheet and returns its rules in document
// order; origin_index increases monotonically, used by the cascade as a
// document-order tie-breaker.
func (s *Scanner) ScanRules() []StyleRule {
	var rules []StyleRule
	for {
		s.skipSpace()
		if s.pos >= len(s.src) {
			break
		}
		if s.src[s.pos] == '@' {
			s.scanAtRule(&rules)
			continue
		}
		selText, ok := s.readUntilAny("{")
		if !ok {
			break
		}
		selText = strings.TrimSpace(selText)
		if selText == "" {
			continue
		}
		decls := s.scanBlock()
		rules = append(rules, StyleRule{
			Selector:     ParseSelector(selText),
			Declarations: decls,
			OriginIndex:  s.origin,
		})
		s.origin++
	}
	return rules
}

// scanAtRule handles `@media screen { ... }` (rules pass through
// transparently) and any other `@...{...}` (body discarded), tracking
// brace depth so nested declaration blocks inside the media body don't
// prematurely close it.
func (s *Scanner) scanAtRule(rules *[]StyleRule) {
	start := s.pos
	s.pos++ // consume '@'
	name := s.readIdent()
	_ = start
	s.skipSpace()
	prelude, ok := s.readUntilAny("{;")
	if !ok {
		s.pos = len(s.src)
		return
	}
	prelude = strings.TrimSpace(prelude)
	if s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++ // `@import "x";`-style at-rule with no body: discard
		return
	}
	// s.src[s.pos] == '{'
	bodyStart := s.pos + 1
	depth := 1
	i := bodyStart
	for i < len(s.src) && depth > 0 {
		switch s.src[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			break
		}
		i++
	}
	body := s.src[bodyStart:i]
	if i < len(s.src) {
		s.pos = i + 1
	} else {
		s.pos = len(s.src)
	}
	if strings.EqualFold(name, "media") && strings.Contains(strings.ToLower(prelude), "screen") {
		inner := NewScanner(body)
		inner.origin = s.origin
		innerRules := inner.ScanRules()
		s.origin = inner.origin
		*rules = append(*rules, innerRules...)
	}
	// any other @-rule body is consumed and discarded.
}

// scanBlock scans from just after a rule's opening '{' to its matching
// '}', returning the flushed declarations. The opening brace must be the
// scanner's current character.
func (s *Scanner) scanBlock() []Declaration {
	if s.pos < len(s.src) && s.src[s.pos] == '{' {
		s.pos++
	}
	var decls []Declaration
	for {
		s.skipSpace()
		if s.pos >= len(s.src) {
			break
		}
		if s.src[s.pos] == '}' {
			s.pos++
			break
		}
		decl, ok := s.scanDeclaration()
		if ok {
			decls = append(decls, decl)
		}
		if s.pos < len(s.src) && s.src[s.pos] == ';' {
			s.pos++
		}
	}
	return decls
}

func (s *Scanner) scanDeclaration() (Declaration, bool) {
	keyStart := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != ':' && s.src[s.pos] != '}' && s.src[s.pos] != ';' {
		s.pos++
	}
	if s.pos >= len(s.src) || s.src[s.pos] != ':' {
		// malformed declaration (missing colon); skip to next ; or }
		for s.pos < len(s.src) && s.src[s.pos] != ';' && s.src[s.pos] != '}' {
			s.pos++
		}
		return Declaration{}, false
	}
	key := strings.ToLower(strings.TrimSpace(s.src[keyStart:s.pos]))
	s.pos++ // consume ':'
	valStart := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != ';' && s.src[s.pos] != '}' {
		if q := s.src[s.pos]; q == '"' || q == '\'' {
			// quoted string: ';' and '}' inside it don't end the value
			s.pos++
			for s.pos < len(s.src) && s.src[s.pos] != q {
				if s.src[s.pos] == '\\' && s.pos+1 < len(s.src) {
					s.pos++
				}
				s.pos++
			}
			if s.pos < len(s.src) {
				s.pos++
			}
			continue
		}
		s.pos++
	}
	rawVal := strings.TrimSpace(s.src[valStart:s.pos])
	important := false
	if idx := findImportant(rawVal); idx >= 0 {
		important = true
		rawVal = strings.TrimSpace(rawVal[:idx])
	}
	if key == "" {
		return Declaration{}, false
	}
	return Declaration{Key: key, Value: ParseValue(rawVal), Important: important}, true
}

func findImportant(s string) int {
	lower := strings.ToLower(s)
	idx := strings.LastIndex(lower, "!important")
	if idx < 0 {
		return -1
	}
	return idx
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) && isSelSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) readIdent() string {
	start := s.pos
	for s.pos < len(s.src) && isSelNameChar(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *Scanner) readUntilAny(chars string) (string, bool) {
	start := s.pos
	for s.pos < len(s.src) {
		if strings.IndexByte(chars, s.src[s.pos]) >= 0 {
			return s.src[start:s.pos], true
		}
		s.pos++
	}
	return s.src[start:s.pos], false
}

// stripComments removes /* ... */ comments and string-literal contents are
// protected so a `/*` inside a quoted string isn't mistaken for a comment.
func stripComments(src string) string {
	var b strings.Builder
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '"' || c == '\'' {
			start := i
			i++
			for i < len(src) && src[i] != c {
				if src[i] == '\\' && i+1 < len(src) {
					i++
				}
				i++
			}
			if i < len(src) {
				i++
			}
			b.WriteString(src[start:i])
			continue
		}
		if c == '/' && i+1 < len(src) && src[i+1] == '*' {
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				break
			}
			i = i + 2 + end + 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
