package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name:     "wildcard listing",
			html:     `<html><body><a href="wildbg.jpg">bg</a><a href="wildgt.jpg">gt</a><a href="readme.txt">readme</a></body></html>`,
			expected: []string{"wildbg.jpg", "wildgt.jpg"},
		},
		{
			name:     "case insensitive suffix",
			html:     `<a href="FOO.JPG">x</a><a href="Bar.Jpg">y</a><a href="foo.png">z</a>`,
			expected: []string{"FOO.JPG", "Bar.Jpg"},
		},
		{
			name:     "duplicates kept in document order",
			html:     `<ul><li><a href="b.jpg"></a></li><li><a href="a.jpg"></a></li><li><a href="b.jpg"></a></li></ul>`,
			expected: []string{"b.jpg", "a.jpg", "b.jpg"},
		},
		{
			name:     "only anchors count",
			html:     `<img src="card.jpg"><link href="style.jpg"><a>no href</a><a href="">empty</a><a href="real.jpg">ok</a>`,
			expected: []string{"real.jpg"},
		},
		{
			name:     "suffix must be at the end",
			html:     `<a href="card.jpg?size=large"></a><a href="card.jpg.html"></a><a href="/cards/full.jpg"></a>`,
			expected: []string{"/cards/full.jpg"},
		},
		{
			name:     "apache style index",
			html:     "<pre><a href=\"?C=N;O=D\">Name</a>\n<a href=\"/monopolydeal/\">Parent Directory</a>\n<a href=\"wildbg.jpg\">wildbg.jpg</a> 2019-01-01 10:00 40K\n</pre>",
			expected: []string{"wildbg.jpg"},
		},
		{
			name:     "no matches",
			html:     `<p>nothing here</p>`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := ExtractString(tt.html, ".jpg")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, refs)
		})
	}
}

func TestExtractCountsMatchingAndIgnored(t *testing.T) {
	html := `<a href="1.jpg"></a><a href="x.gif"></a><a href="2.jpg"></a><a href="y.txt"></a><a href="3.JPG"></a>`

	refs, err := ExtractString(html, ".jpg")
	require.NoError(t, err)
	assert.Len(t, refs, 3)
	assert.Equal(t, []string{"1.jpg", "2.jpg", "3.JPG"}, refs)
}

func TestExtractOtherSuffix(t *testing.T) {
	refs, err := ExtractString(`<a href="a.PNG"></a><a href="b.jpg"></a>`, ".png")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.PNG"}, refs)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		ref      string
		expected string
	}{
		{
			name:     "relative reference",
			base:     "https://example.com/monopolydeal/cards/",
			ref:      "foo.jpg",
			expected: "https://example.com/monopolydeal/cards/foo.jpg",
		},
		{
			name:     "relative path with directory",
			base:     "https://example.com/monopolydeal/",
			ref:      "cards/foo.jpg",
			expected: "https://example.com/monopolydeal/cards/foo.jpg",
		},
		{
			name:     "base without trailing slash",
			base:     "https://example.com/monopolydeal/cards",
			ref:      "foo.jpg",
			expected: "https://example.com/monopolydeal/foo.jpg",
		},
		{
			name:     "root relative",
			base:     "https://example.com/monopolydeal/cards/",
			ref:      "/img/foo.jpg",
			expected: "https://example.com/img/foo.jpg",
		},
		{
			name:     "absolute passes through",
			base:     "https://example.com/monopolydeal/cards/",
			ref:      "https://cdn.example.org/Foo%20Bar.JPG",
			expected: "https://cdn.example.org/Foo%20Bar.JPG",
		},
		{
			name:     "scheme relative",
			base:     "https://example.com/cards/",
			ref:      "//cdn.example.org/foo.jpg",
			expected: "https://cdn.example.org/foo.jpg",
		},
		{
			name:     "parent segments",
			base:     "https://example.com/monopolydeal/cards/",
			ref:      "../foo.jpg",
			expected: "https://example.com/monopolydeal/foo.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.base, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve("http://[::1", "a.jpg")
	assert.Error(t, err)

	_, err = Resolve("https://example.com/", "%zz.jpg")
	assert.Error(t, err)
}
