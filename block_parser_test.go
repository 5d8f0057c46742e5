package mdh

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) Document {
	t.Helper()
	doc, err := parseBlocks(src, defaultMaxNestingDepth)
	if err != nil {
		t.Fatalf("parseBlocks(%q): %v", src, err)
	}
	return doc
}

func TestParseBlocksHeadings(t *testing.T) {
	doc := mustParse(t, "# one\n## two\n###### six\n")
	want := []Block{
		Heading{Level: 1, Content: []Inline{Text{Value: "one"}}},
		Heading{Level: 2, Content: []Inline{Text{Value: "two"}}},
		Heading{Level: 6, Content: []Inline{Text{Value: "six"}}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksHeadingFallbacks(t *testing.T) {
	cases := map[string]string{
		"seven markers":  "####### x\n",
		"no whitespace":  "#x\n",
		"markers only":   "###\n",
		"not at line op": "text # not a heading\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			doc := mustParse(t, src)
			if len(doc.Blocks) != 1 {
				t.Fatalf("blocks = %#v, want one paragraph", doc.Blocks)
			}
			para, ok := doc.Blocks[0].(Paragraph)
			if !ok {
				t.Fatalf("block = %#v, want Paragraph", doc.Blocks[0])
			}
			wantText := strings.TrimSuffix(src, "\n")
			if got := inlineText(para.Content); got != wantText {
				t.Fatalf("paragraph text = %q, want %q", got, wantText)
			}
		})
	}
}

func TestParseBlocksParagraphAccumulation(t *testing.T) {
	doc := mustParse(t, "line one\nline two\n\nline three\n")
	want := []Block{
		Paragraph{Content: []Inline{
			Text{Value: "line one"},
			Text{Value: "\n"},
			Text{Value: "line two"},
		}},
		Paragraph{Content: []Inline{Text{Value: "line three"}}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksCodeFence(t *testing.T) {
	doc := mustParse(t, "```go\nfmt.Println(\"hi\")\n\n# not a heading\n```\nafter\n")
	want := []Block{
		CodeBlock{Text: "fmt.Println(\"hi\")\n\n# not a heading\n", Info: "go"},
		Paragraph{Content: []Inline{Text{Value: "after"}}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksUnterminatedFenceClosesAtEOF(t *testing.T) {
	doc := mustParse(t, "```\nstill code")
	want := []Block{CodeBlock{Text: "still code\n"}}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksTildeFence(t *testing.T) {
	doc := mustParse(t, "~~~~\n```\nnested backtick fence\n```\n~~~~\n")
	want := []Block{CodeBlock{Text: "```\nnested backtick fence\n```\n"}}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksUnorderedList(t *testing.T) {
	doc := mustParse(t, "- one\n- two\n+ three\n* four\n")
	if len(doc.Blocks) != 1 {
		t.Fatalf("blocks = %#v, want one list", doc.Blocks)
	}
	list, ok := doc.Blocks[0].(UnorderedList)
	if !ok {
		t.Fatalf("block = %#v, want UnorderedList", doc.Blocks[0])
	}
	if len(list.Items) != 4 {
		t.Fatalf("items = %#v, want 4", list.Items)
	}
}

func TestParseBlocksOrderedListKeepsMarkerValues(t *testing.T) {
	doc := mustParse(t, "3. third\n9. ninth\n1) first\n")
	list, ok := doc.Blocks[0].(OrderedList)
	if !ok {
		t.Fatalf("block = %#v, want OrderedList", doc.Blocks[0])
	}
	got := []int{}
	for _, item := range list.Items {
		got = append(got, item.Index)
	}
	if !reflect.DeepEqual(got, []int{3, 9, 1}) {
		t.Fatalf("marker values = %v, want [3 9 1]", got)
	}
}

func TestParseBlocksNestedList(t *testing.T) {
	doc := mustParse(t, "- top\n  - nested one\n  - nested two\n- second top\n")
	list, ok := doc.Blocks[0].(UnorderedList)
	if !ok {
		t.Fatalf("block = %#v, want UnorderedList", doc.Blocks[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("top items = %#v, want 2", list.Items)
	}
	first := list.Items[0]
	if len(first.Children) != 1 {
		t.Fatalf("first item children = %#v, want nested list", first.Children)
	}
	nested, ok := first.Children[0].(UnorderedList)
	if !ok {
		t.Fatalf("child = %#v, want UnorderedList", first.Children[0])
	}
	if len(nested.Items) != 2 {
		t.Fatalf("nested items = %#v, want 2", nested.Items)
	}
	if len(list.Items[1].Children) != 0 {
		t.Fatalf("second top item should own no children: %#v", list.Items[1])
	}
}

func TestParseBlocksDedentClosesMultipleLevels(t *testing.T) {
	doc := mustParse(t, "- a\n  - b\n    - c\n- d\n")
	list := doc.Blocks[0].(UnorderedList)
	if len(list.Items) != 2 {
		t.Fatalf("top items = %d, want 2", len(list.Items))
	}
	inner := list.Items[0].Children[0].(UnorderedList)
	if len(inner.Items) != 1 {
		t.Fatalf("middle items = %d, want 1", len(inner.Items))
	}
	innermost := inner.Items[0].Children[0].(UnorderedList)
	if got := inlineText(innermost.Items[0].Content); got != "c" {
		t.Fatalf("innermost item = %q, want \"c\"", got)
	}
}

func TestParseBlocksMixedListKindsSplit(t *testing.T) {
	doc := mustParse(t, "- bullet\n1. number\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks = %#v, want bullet list then ordered list", doc.Blocks)
	}
	if _, ok := doc.Blocks[0].(UnorderedList); !ok {
		t.Fatalf("first block = %#v, want UnorderedList", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[1].(OrderedList); !ok {
		t.Fatalf("second block = %#v, want OrderedList", doc.Blocks[1])
	}
}

func TestParseBlocksBlankLineTerminatesList(t *testing.T) {
	doc := mustParse(t, "- one\n\n- two\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks = %#v, want two separate lists", doc.Blocks)
	}
}

func TestParseBlocksListMarkerNeedsWhitespace(t *testing.T) {
	doc := mustParse(t, "-not a list\n2.not a list\n*emphasis line*\n")
	if len(doc.Blocks) != 1 {
		t.Fatalf("blocks = %#v, want one paragraph", doc.Blocks)
	}
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Fatalf("block = %#v, want Paragraph", doc.Blocks[0])
	}
}

func TestParseBlocksNestingCeiling(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		sb.WriteString(strings.Repeat("  ", i))
		sb.WriteString("- item\n")
	}
	_, err := parseBlocks(sb.String(), 3)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("expected ErrNestingTooDeep, got %v", err)
	}
}

func TestParseBlocksCRLF(t *testing.T) {
	doc := mustParse(t, "# title\r\n\r\ntext\r\n")
	want := []Block{
		Heading{Level: 1, Content: []Inline{Text{Value: "title"}}},
		Paragraph{Content: []Inline{Text{Value: "text"}}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestParseBlocksEmptySource(t *testing.T) {
	doc := mustParse(t, "")
	if len(doc.Blocks) != 0 {
		t.Fatalf("blocks = %#v, want none", doc.Blocks)
	}
}
