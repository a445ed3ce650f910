package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings are
// re-emitted as # lines at their AST level; other blocks become paragraphs.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	w := &writer{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			w.Heading(node.Level, string(node.Text(src)))
		default:
			w.Paragraph(extractText(n, src))
		}
	}

	return &Document{
		Title: titleFromFilename(filename),
		Text:  w.String(),
	}, nil
}

// extractText gets the text content of a goldmark AST node. Nodes with
// children walk the inline tree, which drops the formatting markers; leaf
// blocks such as code fall back to their raw source lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.FirstChild() == nil {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		buf.WriteString(extractText(c, src))
		if c.Type() == ast.TypeBlock && c.NextSibling() != nil {
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String())
}
