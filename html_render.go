package mdh

import (
	"strconv"
	"strings"
)

// RenderHTML renders a document tree as an HTML fragment. It is a total
// function: any Document renders to well-formed markup, in tree order.
func RenderHTML(doc Document) string {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		renderBlock(&b, blk)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, blk Block) {
	switch v := blk.(type) {
	case Heading:
		level := v.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		tag := "h" + strconv.Itoa(level)
		b.WriteString("<")
		b.WriteString(tag)
		b.WriteString(">")
		renderInlines(b, v.Content)
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">\n")
	case Paragraph:
		b.WriteString("<p>")
		renderInlines(b, v.Content)
		b.WriteString("</p>\n")
	case CodeBlock:
		b.WriteString("<pre><code>")
		escapeTo(b, v.Text)
		b.WriteString("</code></pre>\n")
	case OrderedList:
		// The renderer trusts only the first item's marker value; numbering
		// continues sequentially from it.
		if len(v.Items) > 0 && v.Items[0].Index > 1 {
			b.WriteString(`<ol start="`)
			b.WriteString(strconv.Itoa(v.Items[0].Index))
			b.WriteString("\">\n")
		} else {
			b.WriteString("<ol>\n")
		}
		renderItems(b, v.Items)
		b.WriteString("</ol>\n")
	case UnorderedList:
		b.WriteString("<ul>\n")
		renderItems(b, v.Items)
		b.WriteString("</ul>\n")
	}
}

func renderItems(b *strings.Builder, items []ListItem) {
	for _, item := range items {
		b.WriteString("<li>")
		renderInlines(b, item.Content)
		for _, child := range item.Children {
			b.WriteString("\n")
			renderBlock(b, child)
		}
		b.WriteString("</li>\n")
	}
}

func renderInlines(b *strings.Builder, spans []Inline) {
	for _, span := range spans {
		switch v := span.(type) {
		case Text:
			escapeTo(b, v.Value)
		case Bold:
			b.WriteString("<strong>")
			renderInlines(b, v.Content)
			b.WriteString("</strong>")
		case Italic:
			b.WriteString("<em>")
			renderInlines(b, v.Content)
			b.WriteString("</em>")
		case InlineCode:
			b.WriteString("<code>")
			escapeTo(b, v.Text)
			b.WriteString("</code>")
		case Link:
			b.WriteString(`<a href="`)
			escapeAttrTo(b, v.URL)
			b.WriteString(`">`)
			renderInlines(b, v.Label)
			b.WriteString("</a>")
		case Image:
			b.WriteString(`<img src="`)
			escapeAttrTo(b, v.URL)
			b.WriteString(`" alt="`)
			escapeAttrTo(b, v.Alt)
			b.WriteString(`" />`)
		}
	}
}

// escapeTo writes s with &, < and > escaped. Escaping happens exactly once,
// at render time; parsed text is never pre-escaped.
func escapeTo(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
}

// escapeAttrTo additionally escapes quotes, so a crafted target string
// cannot break out of an attribute value.
func escapeAttrTo(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(s[i])
		}
	}
}
