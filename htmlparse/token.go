// Package htmlparse implements a tolerant, streaming HTML tokenizer and
// tree builder. It never delegates to golang.org/x/net/html: recovering
// unbalanced markup and raw-text elements the way a minimal browser does
// is exactly the engineering this module exists to demonstrate.
package htmlparse

// TokenKind classifies a raw token produced by the Tokenizer.
type TokenKind int

const (
	// TokenText is a run of character data, already whitespace-normalized.
	TokenText TokenKind = iota
	// TokenStartTag is an opening tag, e.g. "<div class=\"a\">".
	TokenStartTag
	// TokenEndTag is a closing tag, e.g. "</div>".
	TokenEndTag
	// TokenSelfClosing is an opening tag for a self-closing (void) element.
	TokenSelfClosing
	// TokenComment is a "<!-- ... -->" comment.
	TokenComment
	// TokenDoctype is a "<!DOCTYPE ...>" declaration.
	TokenDoctype
)

// Token is a raw lexical unit produced by the Tokenizer.
//
// For TokenStartTag/TokenSelfClosing, Name is the (upper-cased) tag name
// and Attrs holds the parsed attributes in source order. For TokenEndTag,
// Name is the closing tag's name. For TokenText/TokenComment/TokenDoctype,
// Text carries the payload.
type Token struct {
	Kind  TokenKind
	Name  string
	Attrs []Attribute
	Text  string
}

// Attribute is a single parsed HTML attribute; insertion order is preserved
// by the surrounding slice.
type Attribute struct {
	Key string
	Val string
}
