package mdh

import "strings"

// ParseInline parses a single line of text into inline spans. It is total:
// unmatched or malformed markup degrades to literal text instead of failing.
func ParseInline(text string) []Inline {
	return parseInline(text, 0, defaultMaxNestingDepth)
}

// parseInline scans left to right and tries, in priority order, code span,
// image, link, bold, italic. Anything that does not complete a span is
// emitted as literal text. depth bounds emphasis and link-label recursion;
// at the ceiling the remaining text degrades to a single literal.
func parseInline(text string, depth, maxDepth int) []Inline {
	if text == "" {
		return nil
	}
	if depth >= maxDepth {
		return []Inline{Text{Value: text}}
	}
	var spans []Inline
	litStart := 0
	flush := func(end int) {
		if end > litStart {
			spans = append(spans, Text{Value: text[litStart:end]})
		}
	}
	i := 0
	for i < len(text) {
		var (
			span Inline
			next int
			ok   bool
		)
		switch text[i] {
		case '`':
			span, next, ok = parseCodeSpan(text, i)
		case '!':
			span, next, ok = parseImage(text, i)
		case '[':
			span, next, ok = parseLink(text, i, depth, maxDepth)
		case '*', '_':
			span, next, ok = parseEmphasis(text, i, depth, maxDepth)
		}
		if !ok {
			i++
			continue
		}
		flush(i)
		spans = append(spans, span)
		i = next
		litStart = i
	}
	flush(len(text))
	return spans
}

// parseCodeSpan matches a code span delimited by one or two backticks. The
// closing run must have the same length as the opening run; runs of three or
// more never open a span inside a line.
func parseCodeSpan(text string, start int) (Inline, int, bool) {
	n := delimRunLen(text, start, '`')
	if n > 2 {
		return nil, 0, false
	}
	j := start + n
	for j < len(text) {
		if text[j] != '`' {
			j++
			continue
		}
		m := delimRunLen(text, j, '`')
		if m == n && j > start+n {
			return InlineCode{Text: text[start+n : j]}, j + m, true
		}
		j += m
	}
	return nil, 0, false
}

// parseImage matches ![alt](target). Alt text is plain text, not spans.
func parseImage(text string, start int) (Inline, int, bool) {
	if start+1 >= len(text) || text[start+1] != '[' {
		return nil, 0, false
	}
	alt, target, next, ok := parseBracketPair(text, start+1)
	if !ok {
		return nil, 0, false
	}
	return Image{Alt: alt, URL: target}, next, true
}

// parseLink matches [label](target). The label is itself parsed for inline
// spans, so emphasis and code nest inside link text.
func parseLink(text string, start, depth, maxDepth int) (Inline, int, bool) {
	label, target, next, ok := parseBracketPair(text, start)
	if !ok {
		return nil, 0, false
	}
	return Link{Label: parseInline(label, depth+1, maxDepth), URL: target}, next, true
}

// parseBracketPair matches [body](target) starting at the opening bracket.
// Neither part may be empty and brackets do not nest.
func parseBracketPair(text string, start int) (string, string, int, bool) {
	if start >= len(text) || text[start] != '[' {
		return "", "", 0, false
	}
	closeBracket := strings.IndexByte(text[start+1:], ']')
	if closeBracket < 0 {
		return "", "", 0, false
	}
	closeBracket += start + 1
	if closeBracket == start+1 {
		return "", "", 0, false
	}
	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(text[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	closeParen += closeBracket + 2
	if closeParen == closeBracket+2 {
		return "", "", 0, false
	}
	return text[start+1 : closeBracket], text[closeBracket+2 : closeParen], closeParen + 1, true
}

// parseEmphasis matches emphasis delimited by * or _ runs. A run of length
// one is italic, two is bold, and three or more is bold wrapping italic when
// a closing run of at least three exists. The closing delimiter must use the
// same character and the span must close on this line.
func parseEmphasis(text string, start, depth, maxDepth int) (Inline, int, bool) {
	c := text[start]
	n := delimRunLen(text, start, c)
	if n >= 3 {
		if j := findDelimRun(text, start+n, c, 3); j >= 0 && j > start+3 {
			inner := parseInline(text[start+3:j], depth+1, maxDepth)
			return Bold{Content: []Inline{Italic{Content: inner}}}, j + 3, true
		}
	}
	if n >= 2 {
		if j := findDelimRun(text, start+2, c, 2); j >= 0 && j > start+2 {
			return Bold{Content: parseInline(text[start+2:j], depth+1, maxDepth)}, j + 2, true
		}
		return nil, 0, false
	}
	j := strings.IndexByte(text[start+1:], c)
	if j < 0 {
		return nil, 0, false
	}
	j += start + 1
	if j == start+1 {
		return nil, 0, false
	}
	return Italic{Content: parseInline(text[start+1:j], depth+1, maxDepth)}, j + 1, true
}

// delimRunLen returns the length of the run of c starting at i.
func delimRunLen(text string, i int, c byte) int {
	n := 0
	for i+n < len(text) && text[i+n] == c {
		n++
	}
	return n
}

// findDelimRun returns the index of the first run of c with length at least
// want, searching from index from, or -1.
func findDelimRun(text string, from int, c byte, want int) int {
	for i := from; i < len(text); i++ {
		if text[i] != c {
			continue
		}
		n := delimRunLen(text, i, c)
		if n >= want {
			return i
		}
		i += n - 1
	}
	return -1
}
