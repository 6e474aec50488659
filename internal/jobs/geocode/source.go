package geocode

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Source is the coordinate-lookup capability. The production implementation
// scrapes the upstream detail page; keeping the interface here lets the
// backfill loop stay ignorant of how brittle that is.
type Source interface {
	// Lookup returns the coordinates for a reactor name. found is false when
	// the page exists but does not carry both coordinate fields in a usable
	// form; err covers transport failures and non-success statuses.
	Lookup(ctx context.Context, name string) (coords Coordinates, found bool, err error)
}

// htmlSource extracts latitude/longitude from the hidden form inputs of the
// per-reactor detail page.
type htmlSource struct {
	client *resty.Client
}

func NewHTMLSource(baseURL string, timeout time.Duration) Source {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Referer", "https://world-nuclear.org/nuclear-reactor-database/")

	return &htmlSource{client: client}
}

func (s *htmlSource) Lookup(ctx context.Context, name string) (Coordinates, bool, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/" + detailSlug(name))
	if err != nil {
		return Coordinates{}, false, err
	}

	if !resp.IsSuccess() {
		return Coordinates{}, false, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	return parseCoordinates(resp.Body())
}

// detailSlug builds the detail-page path segment: every word title-cased,
// spaces replaced with hyphens, matching how the upstream site addresses
// reactor pages.
func detailSlug(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))

	previousLetter := false
	for _, r := range name {
		switch {
		case r == ' ':
			builder.WriteRune('-')
			previousLetter = false
		case unicode.IsLetter(r):
			if previousLetter {
				builder.WriteRune(unicode.ToLower(r))
			} else {
				builder.WriteRune(unicode.ToUpper(r))
			}
			previousLetter = true
		default:
			builder.WriteRune(r)
			previousLetter = false
		}
	}

	return builder.String()
}

// parseCoordinates walks the document for <input id="Latitude"> and
// <input id="Longitude">. Both must be present with numeric values; anything
// less reports found=false so the caller leaves the reactor untouched.
func parseCoordinates(page []byte) (Coordinates, bool, error) {
	doc, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("parse detail page: %w", err)
	}

	var latRaw, lonRaw string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "input" {
			id := attrValue(node, "id")
			switch id {
			case "Latitude":
				latRaw = attrValue(node, "value")
			case "Longitude":
				lonRaw = attrValue(node, "value")
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if latRaw == "" || lonRaw == "" {
		return Coordinates{}, false, nil
	}

	latitude, latErr := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	longitude, lonErr := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if latErr != nil || lonErr != nil {
		return Coordinates{}, false, nil
	}

	return Coordinates{Latitude: latitude, Longitude: longitude}, true, nil
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
