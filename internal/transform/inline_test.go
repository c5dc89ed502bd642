package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/gdocfmt/types"
)

func TestNormalizeSpanStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{"bold keyword", "font-weight:bold", "font-weight:700"},
		{"bold numeric", "font-weight: 800", "font-weight:700"},
		{"normal weight", "font-weight:400", ""},
		{"italic", "font-style:italic", "font-style:italic"},
		{"oblique", "font-style:oblique 10deg", "font-style:italic"},
		{"underline", "text-decoration:underline", "text-decoration:underline"},
		{"underline in shorthand", "text-decoration:underline dotted red", "text-decoration:underline"},
		{"underline longhand", "text-decoration-line:underline", "text-decoration:underline"},
		{"line-through only", "text-decoration:line-through", ""},
		{"unknown declarations dropped", "color:#000;font-size:11pt;vertical-align:baseline", ""},
		{
			"combined in alphabetical order",
			"text-decoration:underline;color:red;font-weight:700;font-style:italic",
			"font-style:italic;font-weight:700;text-decoration:underline",
		},
		{"bold and italic", "font-weight:bold;font-style:italic", "font-style:italic;font-weight:700"},
		{"unparsable", ";;:::", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSpanStyle(tt.style))
		})
	}
}

func TestNormalizeSpanStyleIsIdempotent(t *testing.T) {
	for intents := formatIntent(0); intents <= intentBold|intentItalic|intentUnderline; intents++ {
		once := canonicalStyle(intents).String()
		assert.Equal(t, once, NormalizeSpanStyle(once), "intents %03b", intents)
		assert.Equal(t, intents, intentsOf(canonicalStyle(intents)))
	}
}

func TestNormalizeInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "span without format intent loses style",
			input: `<p><span style="color:#ff0000">red</span></p>`,
			want:  `<p><span>red</span></p>`,
		},
		{
			name:  "class carried format resolved",
			input: `<style>.c3{font-weight:700}.c4{font-style:italic;color:red}</style><p><span class="c3 c4">x</span></p>`,
			want:  `<p><span style="font-style:italic;font-weight:700">x</span></p>`,
		},
		{
			name:  "inline style overrides class",
			input: `<style>.c3{font-weight:700}</style><p><span class="c3" style="font-weight:400">x</span></p>`,
			want:  `<p><span>x</span></p>`,
		},
		{
			name:  "image keeps width verbatim",
			input: `<p><img src="a.png" class="c2" style="width: 468.00px; height: 312.00px; margin-left: 0px;"></p>`,
			want:  `<p><img src="a.png" style="width:468.00px"/></p>`,
		},
		{
			name:  "image without width loses style",
			input: `<p><img src="a.png" style="height:10px"></p>`,
			want:  `<p><img src="a.png"/></p>`,
		},
		{
			name:  "list keeps marker type only",
			input: `<ul class="lst-a-0" style="list-style-type:square;margin:0"><li>x</li></ul>`,
			want:  `<ul class="lst-a-0" style="list-style-type:square"><li>x</li></ul>`,
		},
		{
			name:  "prose whitespace and nbsp normalized",
			input: "<p>&nbsp;Text&nbsp;color   and\nhighlighting</p>",
			want:  `<p>Text color and highlighting</p>`,
		},
		{
			name:  "leading space trimmed through inline wrapper",
			input: `<p><span>  Hello</span>  <b>World</b></p>`,
			want:  `<p><span>Hello</span> <b>World</b></p>`,
		},
		{
			name:  "code text left alone",
			input: "<pre>  a&nbsp;&nbsp;b</pre>",
			want:  "<pre>  a\u00a0\u00a0b</pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := prepareDocument(t, tt.input, types.DefaultOptions())
			scrubAttributes(d)
			normalizeInline(d)
			assert.Equal(t, tt.want, renderBody(t, d))
		})
	}
}

func TestNormalizeInlineCountsChanges(t *testing.T) {
	d := prepareDocument(t, `<p><span style="font-weight:700">x</span></p>`, types.DefaultOptions())
	require.Equal(t, 0, normalizeInline(d))
}
