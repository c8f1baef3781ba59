// ABOUTME: Renderer turns a parsed feed into the entry set shown in the container
// ABOUTME: Pure functions only; committing the result is the pipeline's job

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"feedreader/core/domain"
	"feedreader/pkg/utils/html"

	"github.com/gosimple/slug"
	"github.com/samber/lo"
)

// ExcerptWords bounds the plain-text excerpt of every entry
const ExcerptWords = 38

var entryTemplate = template.Must(template.New("feed").Parse(
	`{{range .}}<a class="entry-link" href="{{.Link}}"><article class="entry" id="{{.ID}}"><h2>{{.Title}}</h2>{{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}</article></a>{{end}}`,
))

// BuildEntries computes the entry set for feed. IDs are unique within the set.
func BuildEntries(feed *domain.Feed) []domain.Entry {
	if feed.Len() == 0 {
		return []domain.Entry{}
	}

	seen := make(map[string]bool, len(feed.Articles))

	return lo.Map(feed.Articles, func(a domain.Article, i int) domain.Entry {
		return domain.Entry{
			ID:        uniqueID(seen, a, i),
			Title:     a.Title,
			Link:      a.Link,
			Excerpt:   html.Excerpt(a.Body(), ExcerptWords),
			Author:    a.Author,
			Published: a.Published,
		}
	})
}

// uniqueID suffixes the title slug until it differs from every ID already emitted
func uniqueID(seen map[string]bool, a domain.Article, i int) string {
	base := slug.Make(a.Title)
	if base == "" {
		base = fmt.Sprintf("entry-%d", i+1)
	}

	id := base
	for n := 2; seen[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	seen[id] = true
	return id
}

// HTML renders entries as the inner markup of the feed container
func HTML(entries []domain.Entry) (string, error) {
	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}
