package generator

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdown      = goldmark.New()
	headingMarker = regexp.MustCompile(`^#{1,6}\s+`)
)

// PostProcess picks the question out of the model output and returns it as one line.
// goldmark only splits the reply into top-level blocks; the chosen block keeps its
// source bytes, so inline html, literal '*' or a leading "1984." survive. The first
// block containing '?' wins, otherwise the whole reply is used. Afterwards only a
// wrapping heading marker, "**" pair or quote pair is removed.
func PostProcess(raw string) string {
	src := []byte(strings.TrimSpace(raw))
	if len(src) == 0 {
		return ""
	}

	doc := markdown.Parser().Parse(text.NewReader(src))
	question := ""
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		block := collapse(blockSource(n, src))
		if strings.Contains(block, "?") {
			question = block
			break
		}
	}
	if question == "" {
		question = collapse(string(src))
	}
	return unwrap(question)
}

// blockSource returns the source of a top-level block from the start of its first
// line, so list numbers and heading markers stay in place.
func blockSource(n ast.Node, src []byte) string {
	start, stop := -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if start < 0 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if start < 0 {
		return ""
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	return string(src[start:stop])
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func unwrap(s string) string {
	for {
		prev := s
		s = headingMarker.ReplaceAllString(s, "")
		if len(s) > 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") {
			s = strings.TrimSpace(s[2 : len(s)-2])
		}
		s = trimQuotePair(s)
		if s == prev {
			return s
		}
	}
}

func trimQuotePair(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return s
	}
	first, last := r[0], r[len(r)-1]
	if (first == '"' && last == '"') || (first == '“' && last == '”') {
		return strings.TrimSpace(string(r[1 : len(r)-1]))
	}
	return s
}
