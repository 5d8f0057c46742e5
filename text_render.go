package mdh

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const minWrapWidth = 20

// RenderText renders a document tree as wrapped plain text for terminal
// display. Heading markers are kept, emphasis markers are dropped, links
// render as "label (target)". Width <= 0 disables wrapping.
func RenderText(doc Document, width int) string {
	var b strings.Builder
	tr := textRenderer{width: width}
	for i, blk := range doc.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		tr.block(&b, blk, 0)
	}
	return b.String()
}

type textRenderer struct {
	width int
}

func (t textRenderer) block(b *strings.Builder, blk Block, level int) {
	switch v := blk.(type) {
	case Heading:
		b.WriteString(strings.Repeat("#", v.Level))
		b.WriteString(" ")
		b.WriteString(inlineText(v.Content))
		b.WriteString("\n")
	case Paragraph:
		b.WriteString(t.wrap(inlineText(v.Content), 0))
		b.WriteString("\n")
	case CodeBlock:
		// Code is never wrapped.
		if v.Text != "" {
			b.WriteString(v.Text)
			if !strings.HasSuffix(v.Text, "\n") {
				b.WriteString("\n")
			}
		}
	case OrderedList:
		next := 1
		if len(v.Items) > 0 && v.Items[0].Index > 0 {
			next = v.Items[0].Index
		}
		for _, item := range v.Items {
			t.item(b, strconv.Itoa(next)+". ", item, level)
			next++
		}
	case UnorderedList:
		for _, item := range v.Items {
			t.item(b, "- ", item, level)
		}
	}
}

func (t textRenderer) item(b *strings.Builder, marker string, item ListItem, level int) {
	b.WriteString(t.wrap(marker+inlineText(item.Content), level*2))
	b.WriteString("\n")
	for _, child := range item.Children {
		t.block(b, child, level+1)
	}
}

func (t textRenderer) wrap(s string, pad int) string {
	if t.width > 0 {
		inner := t.width - pad
		if inner < minWrapWidth {
			inner = minWrapWidth
		}
		s = wordwrap.String(s, inner)
	}
	if pad > 0 {
		s = strings.TrimRight(indent.String(s, uint(pad)), "\n")
	}
	return s
}

// inlineText flattens inline spans to plain text, the way the terminal view
// shows them.
func inlineText(spans []Inline) string {
	var b strings.Builder
	writeInlineText(&b, spans)
	return b.String()
}

func writeInlineText(b *strings.Builder, spans []Inline) {
	for _, span := range spans {
		switch v := span.(type) {
		case Text:
			b.WriteString(v.Value)
		case Bold:
			writeInlineText(b, v.Content)
		case Italic:
			writeInlineText(b, v.Content)
		case InlineCode:
			b.WriteString(v.Text)
		case Link:
			writeInlineText(b, v.Label)
			b.WriteString(" (")
			b.WriteString(v.URL)
			b.WriteString(")")
		case Image:
			b.WriteString(v.Alt)
			b.WriteString(" (")
			b.WriteString(v.URL)
			b.WriteString(")")
		}
	}
}
