package mdh

// Document is an ordered sequence of block nodes. Block order equals source
// order; nothing is reordered or deduplicated.
type Document struct {
	Blocks []Block
}

// Block is a block-level node: a structural unit occupying whole lines.
type Block interface {
	block()
}

// Inline is an inline span inside a line of text.
type Inline interface {
	inline()
}

// Heading is an ATX heading. Level is always within 1..6; marker runs deeper
// than 6 never produce a Heading and fall back to a Paragraph instead.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph is a run of contiguous plain lines.
type Paragraph struct {
	Content []Inline
}

// CodeBlock is a fenced code block. Text is the verbatim fence body and is
// never interpreted as markdown. Info is the fence info string, if any.
type CodeBlock struct {
	Text string
	Info string
}

// OrderedList groups contiguous ordered-list items.
type OrderedList struct {
	Items []ListItem
}

// UnorderedList groups contiguous bullet items.
type UnorderedList struct {
	Items []ListItem
}

// ListItem is one item of an ordered or unordered list. Index is the marker
// value as written in the source (0 for bullets); rendering trusts only the
// first item's index. Children holds nested lists owned by this item.
type ListItem struct {
	Index    int
	Content  []Inline
	Children []Block
}

// Text is a plain text leaf, escaped on render.
type Text struct {
	Value string
}

// Bold is a strong-emphasis span. Content may nest further inline spans.
type Bold struct {
	Content []Inline
}

// Italic is an emphasis span. Content may nest further inline spans.
type Italic struct {
	Content []Inline
}

// InlineCode is a code span. Text is a terminal leaf: no inline parsing
// happens inside it.
type InlineCode struct {
	Text string
}

// Link is an inline link. Label is rendered recursively; URL is an opaque
// target string, escaped only at render time.
type Link struct {
	Label []Inline
	URL   string
}

// Image is an inline image reference. Alt is plain text, not inline spans.
type Image struct {
	Alt string
	URL string
}

func (Heading) block()       {}
func (Paragraph) block()     {}
func (CodeBlock) block()     {}
func (OrderedList) block()   {}
func (UnorderedList) block() {}

func (Text) inline()       {}
func (Bold) inline()       {}
func (Italic) inline()     {}
func (InlineCode) inline() {}
func (Link) inline()       {}
func (Image) inline()      {}
