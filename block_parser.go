package mdh

import (
	"fmt"
	"strings"
)

// blockParser assembles lines into a document tree. Blocks are recognized in
// a fixed priority per line: fence, heading, list marker, paragraph. Lines
// inside an open fence are captured verbatim and never reinterpreted.
type blockParser struct {
	maxDepth int

	blocks []Block
	para   []string
	stack  []openList

	inFence    bool
	fenceChar  byte
	fenceLen   int
	fenceInfo  string
	fenceLines []string
}

// openList is one level of list nesting: the marker indentation it was
// opened at and the items collected so far.
type openList struct {
	indent  int
	ordered bool
	items   []ListItem
}

func newBlockParser(maxDepth int) *blockParser {
	if maxDepth <= 0 {
		maxDepth = defaultMaxNestingDepth
	}
	return &blockParser{maxDepth: maxDepth}
}

// parseBlocks parses a markdown source into a Document. Any input maps to
// some Document; the only reported failure is the list nesting ceiling.
func parseBlocks(source string, maxDepth int) (Document, error) {
	p := newBlockParser(maxDepth)
	rest := source
	for rest != "" {
		line := rest
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			line = rest[:idx]
			rest = rest[idx+1:]
		} else {
			rest = ""
		}
		if err := p.feedLine(strings.TrimSuffix(line, "\r")); err != nil {
			return Document{}, err
		}
	}
	return p.finish(), nil
}

func (p *blockParser) feedLine(line string) error {
	if p.inFence {
		if isFenceClose(line, p.fenceChar, p.fenceLen) {
			p.closeFence()
			return nil
		}
		p.fenceLines = append(p.fenceLines, line)
		return nil
	}
	if strings.TrimSpace(line) == "" {
		p.flushParagraph()
		p.closeLists()
		return nil
	}
	indent, rest := splitIndent(line)
	if ch, n, info, ok := parseFenceOpen(rest); ok {
		p.flushParagraph()
		p.closeLists()
		p.inFence = true
		p.fenceChar = ch
		p.fenceLen = n
		p.fenceInfo = info
		p.fenceLines = nil
		return nil
	}
	if level, content, ok := parseHeading(rest); ok {
		p.flushParagraph()
		p.closeLists()
		p.blocks = append(p.blocks, Heading{Level: level, Content: parseInline(content, 0, p.maxDepth)})
		return nil
	}
	if marker, ok := parseListMarker(rest); ok {
		p.flushParagraph()
		return p.addListItem(indent, marker)
	}
	p.closeLists()
	p.para = append(p.para, strings.TrimRight(rest, " \t"))
	return nil
}

// finish closes whatever is still open. An unterminated fence closes at end
// of input rather than failing.
func (p *blockParser) finish() Document {
	if p.inFence {
		p.closeFence()
	}
	p.flushParagraph()
	p.closeLists()
	return Document{Blocks: p.blocks}
}

func (p *blockParser) flushParagraph() {
	if len(p.para) == 0 {
		return
	}
	var content []Inline
	for i, line := range p.para {
		if i > 0 {
			content = append(content, Text{Value: "\n"})
		}
		content = append(content, parseInline(line, 0, p.maxDepth)...)
	}
	p.para = p.para[:0]
	p.blocks = append(p.blocks, Paragraph{Content: content})
}

func (p *blockParser) closeFence() {
	text := ""
	if len(p.fenceLines) > 0 {
		text = strings.Join(p.fenceLines, "\n") + "\n"
	}
	p.blocks = append(p.blocks, CodeBlock{Text: text, Info: p.fenceInfo})
	p.inFence = false
	p.fenceChar = 0
	p.fenceLen = 0
	p.fenceInfo = ""
	p.fenceLines = nil
}

// addListItem places a marker line on the list stack: shallower indentation
// closes levels, equal indentation extends the current list (or replaces it
// when the marker kind flips), deeper indentation opens a nested list owned
// by the enclosing item.
func (p *blockParser) addListItem(indent int, marker listMarker) error {
	for len(p.stack) > 0 && indent < p.stack[len(p.stack)-1].indent {
		p.popList()
	}
	switch {
	case len(p.stack) == 0 || indent > p.stack[len(p.stack)-1].indent:
		if len(p.stack) >= p.maxDepth {
			return fmt.Errorf("list nesting exceeds %d levels: %w", p.maxDepth, ErrNestingTooDeep)
		}
		p.stack = append(p.stack, openList{indent: indent, ordered: marker.ordered})
	case p.stack[len(p.stack)-1].ordered != marker.ordered:
		p.popList()
		p.stack = append(p.stack, openList{indent: indent, ordered: marker.ordered})
	}
	top := &p.stack[len(p.stack)-1]
	top.items = append(top.items, ListItem{
		Index:   marker.index,
		Content: parseInline(marker.content, 0, p.maxDepth),
	})
	return nil
}

// popList closes the innermost list: nested lists attach to the last item of
// the enclosing level, the outermost list lands in the document.
func (p *blockParser) popList() {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	var blk Block
	if top.ordered {
		blk = OrderedList{Items: top.items}
	} else {
		blk = UnorderedList{Items: top.items}
	}
	if len(p.stack) > 0 {
		parent := &p.stack[len(p.stack)-1]
		if len(parent.items) > 0 {
			item := &parent.items[len(parent.items)-1]
			item.Children = append(item.Children, blk)
			return
		}
	}
	p.blocks = append(p.blocks, blk)
}

func (p *blockParser) closeLists() {
	for len(p.stack) > 0 {
		p.popList()
	}
}

// listMarker is a recognized list marker line, already split from its
// content.
type listMarker struct {
	ordered bool
	index   int
	content string
}

// parseListMarker matches a bullet (-, + or * plus whitespace) or an ordered
// marker (digits plus . or ) plus whitespace). The marker value of ordered
// items is preserved for the renderer's first-item policy.
func parseListMarker(text string) (listMarker, bool) {
	if text == "" {
		return listMarker{}, false
	}
	switch text[0] {
	case '-', '+', '*':
		if len(text) < 2 || !isSpace(text[1]) {
			return listMarker{}, false
		}
		return listMarker{content: strings.TrimLeft(text[1:], " \t")}, true
	}
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i > 9 || i >= len(text) {
		return listMarker{}, false
	}
	if text[i] != '.' && text[i] != ')' {
		return listMarker{}, false
	}
	if i+1 >= len(text) || !isSpace(text[i+1]) {
		return listMarker{}, false
	}
	index := 0
	for j := 0; j < i; j++ {
		index = index*10 + int(text[j]-'0')
	}
	return listMarker{
		ordered: true,
		index:   index,
		content: strings.TrimLeft(text[i+1:], " \t"),
	}, true
}

// parseHeading matches one to six # characters followed by whitespace.
// Deeper marker runs are not headings and fall through to paragraph
// accumulation, keeping the markers as literal text.
func parseHeading(text string) (int, string, bool) {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level >= len(text) || !isSpace(text[level]) {
		return 0, "", false
	}
	return level, strings.TrimSpace(text[level:]), true
}

// parseFenceOpen matches a fence line: three or more identical ` or ~
// characters, optionally followed by an info string.
func parseFenceOpen(text string) (byte, int, string, bool) {
	if text == "" {
		return 0, 0, "", false
	}
	ch := text[0]
	if ch != '`' && ch != '~' {
		return 0, 0, "", false
	}
	n := delimRunLen(text, 0, ch)
	if n < 3 {
		return 0, 0, "", false
	}
	return ch, n, strings.TrimSpace(text[n:]), true
}

// isFenceClose reports whether line closes a fence opened with fenceLen
// fenceChar characters: a run at least as long, and nothing else on the
// line.
func isFenceClose(line string, fenceChar byte, fenceLen int) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	n := delimRunLen(trimmed, 0, fenceChar)
	return n >= fenceLen && n == len(trimmed)
}

// splitIndent returns the visual indentation width (tabs count as four) and
// the line content after it.
func splitIndent(line string) (int, string) {
	count := 0
	i := 0
	for i < len(line) {
		if line[i] == ' ' {
			count++
			i++
			continue
		}
		if line[i] == '\t' {
			count += 4
			i++
			continue
		}
		break
	}
	return count, line[i:]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
