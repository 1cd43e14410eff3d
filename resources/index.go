package resources

import (
	"context"
	"log/slog"
	"strings"

	"care-lab/domain"

	"github.com/blugelabs/bluge"
)

// Index is a Bluge full-text index over the resource library. It lives
// entirely in memory; the library is small and rebuilt at startup.
type Index struct {
	writer  *bluge.Writer
	byID    map[string]domain.Resource
	ordered []domain.Resource
	log     *slog.Logger
}

func NewIndex(library []domain.Resource, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Resource, len(library))
	for _, resource := range library {
		byID[resource.ID] = resource

		doc := bluge.NewDocument(resource.ID).
			AddField(bluge.NewTextField("title", resource.Title).StoreValue()).
			AddField(bluge.NewTextField("body", resource.Body)).
			AddField(bluge.NewTextField("tags", strings.Join(resource.Tags, " ")))
		if err := writer.Update(doc.ID(), doc); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}

	return &Index{writer: writer, byID: byID, ordered: library, log: log}, nil
}

// Search returns resources ranked by relevance. An empty query lists the
// whole library in display order so the resources page is never blank.
func (i *Index) Search(ctx context.Context, terms string, limit int) ([]domain.Resource, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		if limit > 0 && limit < len(i.ordered) {
			return i.ordered[:limit], nil
		}
		return i.ordered, nil
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(terms).SetField("title")).
		AddShould(bluge.NewMatchQuery(terms).SetField("body")).
		AddShould(bluge.NewMatchQuery(terms).SetField("tags"))
	query.SetMinShould(1)

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var results []domain.Resource
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if resource, ok := i.byID[string(value)]; ok {
					results = append(results, resource)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
