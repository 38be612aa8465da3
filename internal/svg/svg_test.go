package svg

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "safe text is unchanged", input: "octo/repo-1", expected: "octo/repo-1"},
		{name: "all five characters", input: `&<>"'`, expected: "&amp;&lt;&gt;&quot;&apos;"},
		{name: "markup injection", input: `<script>alert("x")</script>`, expected: "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{name: "ampersand is escaped first", input: "&lt;", expected: "&amp;lt;"},
		{name: "empty", input: "", expected: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Escape(tc.input))
		})
	}
}

var entity = regexp.MustCompile(`&(amp|lt|gt|quot|apos);`)

func TestDocument_Render_EscapesEveryValue(t *testing.T) {
	hostile := `evil"/><script>'&`
	doc := Document{
		Width:  900,
		Height: 100,
		Title:  hostile,
		Defs: []Node{
			LinearGradient{ID: "g", X1: "0%", X2: "100%", Stops: []Stop{{Offset: "0%", Color: hostile}}},
		},
		Children: []Node{
			Rect{X: 1, Y: 2, Width: 3, Height: 4, Fill: hostile},
			Text{X: 1, Y: 2, Class: "label", Fill: hostile, Content: hostile},
			Anchor{Href: hostile, Children: []Node{Circle{CX: 1, CY: 1, R: 1, Fill: hostile}, Path{D: hostile}}},
			Group{Transform: hostile, Children: []Node{Style{CSS: hostile}}},
		},
	}

	out := string(doc.Render())

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, `evil"`)
	assert.NotContains(t, out, "'")
	assert.NotContains(t, entity.ReplaceAllString(out, ""), "&")
	assert.Equal(t, 10, strings.Count(out, "evil&quot;/&gt;&lt;script&gt;&apos;&amp;"))
}

func TestDocument_Render_Structure(t *testing.T) {
	doc := Document{
		Width:  900,
		Height: 180,
		Children: []Node{
			Rect{Width: 900, Height: 180, RX: 14, Fill: "#0d1117"},
			Text{X: 24, Y: 60, Fill: "#e5e7eb", FontSize: 18, FontWeight: "700", Content: "Hello"},
		},
	}

	expected := `<svg xmlns="http://www.w3.org/2000/svg" width="900" height="180" viewBox="0 0 900 180" role="img">
<rect x="0" y="0" width="900" height="180" rx="14" fill="#0d1117"/>
<text x="24" y="60" fill="#e5e7eb" font-family="ui-sans-serif,system-ui" font-size="18" font-weight="700">Hello</text>
</svg>
`
	assert.Equal(t, expected, string(doc.Render()))
}

func TestDocument_Render_Deterministic(t *testing.T) {
	doc := Document{Width: 10, Height: 10, Children: []Node{Rect{Width: 1, Height: 1, Fill: URL("bar")}}}

	first := doc.Render()
	second := doc.Render()

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `fill="url(#bar)"`)
}
