package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/gdocfmt/types"
)

func TestNormalizeLists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "levels follow nesting depth",
			input: `<ul><li>a<ul><li>b<ol><li>c</li></ol></li></ul></li></ul>`,
			want:  `<ul class="level-0"><li>a<ul class="level-1"><li>b<ol class="level-2"><li>c</li></ol></li></ul></li></ul>`,
		},
		{
			name:  "existing level replaced",
			input: `<ol class="level-5 c2"><li>x</li></ol>`,
			want:  `<ol class="c2 level-0"><li>x</li></ol>`,
		},
		{
			name:  "list classes first",
			input: `<ol class="c2 lst-kix_x-0 start level-3"><li>x</li></ol>`,
			want:  `<ol class="lst-kix_x-0 c2 start level-0"><li>x</li></ol>`,
		},
		{
			name: "only referenced list rules survive",
			input: `<style>ol.lst-kix_a-0 { list-style-type: none }.c3{font-weight:700}ul.lst-kix_zzz-0{margin:0}</style>` +
				`<ol class="lst-kix_a-0"><li>x</li></ol>`,
			want: `<style>ol.lst-kix_a-0 { list-style-type: none }</style><ol class="lst-kix_a-0 level-0"><li>x</li></ol>`,
		},
		{
			name:  "no stylesheet when nothing survives",
			input: `<style>.c1{margin:0}</style><ul class="lst-kix_a-0"><li>x</li></ul>`,
			want:  `<ul class="lst-kix_a-0 level-0"><li>x</li></ul>`,
		},
		{
			name: "flat lists nested by declared level",
			input: `<ul class="lst-kix_a-0"><li>Item 1</li></ul>` +
				`<ul class="lst-kix_a-1"><li>Item 1.1</li></ul>` +
				`<ul class="lst-kix_a-0"><li>Item 2</li></ul>`,
			want: `<ul class="lst-kix_a-0 level-0"><li>Item 1<ul class="lst-kix_a-1 level-1"><li>Item 1.1</li></ul></li></ul>` +
				`<ul class="lst-kix_a-0 level-0"><li>Item 2</li></ul>`,
		},
		{
			name:  "flat list without a preceding list stays put",
			input: `<p>intro</p><ul class="lst-kix_a-1"><li>x</li></ul>`,
			want:  `<p>intro</p><ul class="lst-kix_a-1 level-0"><li>x</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := prepareDocument(t, tt.input, types.DefaultOptions())
			normalizeLists(d)
			assert.Equal(t, tt.want, renderBody(t, d))
		})
	}
}

func TestNormalizeListsWithoutNesting(t *testing.T) {
	opts := types.DefaultOptions()
	opts.NestFlatLists = false

	d := prepareDocument(t, `<ul class="lst-kix_a-0"><li>a</li></ul><ul class="lst-kix_a-1"><li>b</li></ul>`, opts)
	normalizeLists(d)

	assert.Equal(t,
		`<ul class="lst-kix_a-0 level-0"><li>a</li></ul><ul class="lst-kix_a-1 level-0"><li>b</li></ul>`,
		renderBody(t, d))
}

func TestNormalizeListsIsStable(t *testing.T) {
	d := prepareDocument(t, `<ul><li>a<ul><li>b</li></ul></li></ul>`, types.DefaultOptions())
	require.Equal(t, 2, normalizeLists(d))
	assert.Equal(t, 0, normalizeLists(d))
}

func TestDeclaredLevel(t *testing.T) {
	tests := []struct {
		class string
		level int
		ok    bool
	}{
		{"lst-kix_list_2-1", 1, true},
		{"c4 lst-kix_3x9hb2v1k8ld-12 start", 12, true},
		{"lst-kix_abc", 0, false},
		{"c2-3", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			level, ok := declaredLevel(tt.class)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.level, level)
		})
	}
}
