package transform

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mrjoshuak/gdocfmt/types"
)

func TestScrubAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "header style removed whatever it holds",
			input: `<h2 style="font-weight:700;font-style:italic">Title</h2>`,
			want:  `<h2>Title</h2>`,
		},
		{
			name:  "paragraph style and class removed",
			input: `<p class="c1 c4" style="margin:0">x</p>`,
			want:  `<p>x</p>`,
		},
		{
			name:  "semantic tags lose style",
			input: `<b style="color:red">x</b><blockquote style="border:0">y</blockquote><li style="margin-left:36pt">z</li>`,
			want:  `<b>x</b><blockquote>y</blockquote><li>z</li>`,
		},
		{
			name:  "allowed kinds are left for later passes",
			input: `<span class="c1" style="color:red">x</span><img src="a.png" style="height:2px"><ol class="lst-a-0" style="margin:0"></ol>`,
			want:  `<span class="c1" style="color:red">x</span><img src="a.png" style="height:2px"/><ol class="lst-a-0" style="margin:0"></ol>`,
		},
		{
			name:  "element without style untouched",
			input: `<div id="main" title="t"><p>x</p></div>`,
			want:  `<div id="main" title="t"><p>x</p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := prepareDocument(t, tt.input, types.DefaultOptions())
			scrubAttributes(d)
			assert.Equal(t, tt.want, renderBody(t, d))
		})
	}
}

func TestScrubIsTagScoped(t *testing.T) {
	tags := []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "div", "li", "blockquote", "pre", "a", "em", "strong", "u", "table"}
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString("<" + tag + ` style="font-weight:700;color:red;width:10px">x</` + tag + ">")
	}

	out, err := ProcessHTML(b.String())
	assert.NoError(t, err)

	doc := parseFragment(t, out)
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		_, ok := s.Attr("style")
		assert.False(t, ok, "%s kept a style attribute", goquery.NodeName(s))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		node *html.Node
		want elementKind
	}{
		{&html.Node{Type: html.ElementNode, Data: "h3", DataAtom: atom.H3}, kindHeader},
		{&html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}, kindFormatSpan},
		{&html.Node{Type: html.ElementNode, Data: "img", DataAtom: atom.Img}, kindImage},
		{&html.Node{Type: html.ElementNode, Data: "ul", DataAtom: atom.Ul}, kindList},
		{&html.Node{Type: html.ElementNode, Data: "ol", DataAtom: atom.Ol}, kindList},
		{&html.Node{Type: html.ElementNode, Data: "pre", DataAtom: atom.Pre}, kindCodeBlock},
		{&html.Node{Type: html.CommentNode, Data: "note"}, kindComment},
		{&html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}, kindOther},
		{&html.Node{Type: html.TextNode, Data: "span"}, kindOther},
		{nil, kindOther},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.node))
		})
	}
}

func TestAllowsStyle(t *testing.T) {
	assert.True(t, kindFormatSpan.allowsStyle())
	assert.True(t, kindImage.allowsStyle())
	assert.True(t, kindList.allowsStyle())
	assert.False(t, kindHeader.allowsStyle())
	assert.False(t, kindCodeBlock.allowsStyle())
	assert.False(t, kindOther.allowsStyle())
}
