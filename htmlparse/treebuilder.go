package htmlparse

import "github.com/npillmayer/miniweb/dom"

// Parse tokenizes and builds a DOM forest from raw HTML source, returning
// the document root. Per spec.md §4.2, a mutable "current parent" cursor
// walks the token stream; unbalanced closing tags are recovered by
// searching ancestors for the nearest matching tag.
func Parse(src string) *dom.Node {
	root := dom.NewElement("#document")
	cur := root
	tok := NewTokenizer(src)
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case TokenText:
			cur.AppendChild(dom.NewText(t.Text))
		case TokenComment:
			cur.AppendChild(dom.NewComment(t.Text))
		case TokenDoctype:
			cur.AppendChild(dom.NewDoctype(t.Text))
		case TokenSelfClosing:
			el := dom.NewElement(t.Name)
			applyAttrs(el, t.Attrs)
			cur.AppendChild(el)
		case TokenStartTag:
			el := dom.NewElement(t.Name)
			applyAttrs(el, t.Attrs)
			cur.AppendChild(el)
			cur = el
		case TokenEndTag:
			if cur.TagName == t.Name {
				if p := cur.Parent(); p != nil {
					cur = p
				}
				continue
			}
			if anc := findAncestorByTag(cur, t.Name); anc != nil {
				if p := anc.Parent(); p != nil {
					cur = p
				} else {
					cur = root
				}
			}
			// else: stray closing tag with no matching open ancestor; ignored.
		}
	}
	return root
}

func applyAttrs(el *dom.Node, attrs []Attribute) {
	for _, a := range attrs {
		el.SetAttribute(a.Key, a.Val)
	}
}

// findAncestorByTag searches from `from` upward (inclusive) for the
// nearest element whose tag name matches name.
func findAncestorByTag(from *dom.Node, name string) *dom.Node {
	for n := from; n != nil; n = n.Parent() {
		if n.TagName == name {
			return n
		}
	}
	return nil
}
