package resources

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestIndex_Search(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	index, err := NewIndex(Library(), log)
	req.NoError(err)
	defer index.Close()

	t.Run("Empty query lists the whole library in order", func(t *testing.T) {
		results, err := index.Search(ctx, "  ", 10)
		req.NoError(err)
		req.Len(results, len(Library()))
		req.Equal("caregiver-plan", results[0].ID)
	})

	t.Run("Keyword finds the right document", func(t *testing.T) {
		results, err := index.Search(ctx, "checklist", 10)
		req.NoError(err)
		req.NotEmpty(results)
		req.Equal("comfort-checklist", results[0].ID)
	})

	t.Run("Body terms match too", func(t *testing.T) {
		results, err := index.Search(ctx, "seizure", 10)
		req.NoError(err)
		req.NotEmpty(results)
		req.Equal("emergency-reminders", results[0].ID)
	})

	t.Run("Nonsense finds nothing", func(t *testing.T) {
		results, err := index.Search(ctx, "zzzqqq", 10)
		req.NoError(err)
		req.Empty(results)
	})

	t.Run("Limit is honored", func(t *testing.T) {
		results, err := index.Search(ctx, "", 2)
		req.NoError(err)
		req.Len(results, 2)
	})
}
