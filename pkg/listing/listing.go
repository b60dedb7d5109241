// Package listing finds card image references on a listing page and
// resolves them against the page URL.
package listing

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract returns the href of every anchor whose value ends in suffix,
// compared case-insensitively. Document order is kept and duplicates are
// not removed.
func Extract(r io.Reader, suffix string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	suffix = strings.ToLower(suffix)
	refs := make([]string, 0)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.HasSuffix(strings.ToLower(href), suffix) {
			refs = append(refs, href)
		}
	})

	return refs, nil
}

// ExtractString is Extract for an in-memory page
func ExtractString(html, suffix string) ([]string, error) {
	return Extract(strings.NewReader(html), suffix)
}

// Resolve joins ref onto base using RFC 3986 reference resolution. An
// absolute ref is returned unchanged.
func Resolve(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if refURL.IsAbs() {
		return ref, nil
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
