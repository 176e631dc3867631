package lexicon_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phonogen/internal/adapter/postgres"
	lexiconrepo "github.com/heartmarshall/phonogen/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/phonogen/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/phonogen/internal/phonology"
	"github.com/heartmarshall/phonogen/internal/reftable"
	"github.com/heartmarshall/phonogen/internal/service/lexicon"
)

func newIntegrationService(t *testing.T) *lexicon.Service {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	tables, err := reftable.Default()
	require.NoError(t, err)
	return lexicon.NewService(slog.New(slog.DiscardHandler), lexiconrepo.New(pool), postgres.NewTxManager(pool), tables)
}

func TestIntegration_CreateAndRead(t *testing.T) {
	svc := newIntegrationService(t)
	ctx := context.Background()

	input := lexicon.GenerateInput{
		Seed:    phonology.StringSeed("integration"),
		Options: phonology.DefaultOptions(),
		Words:   25,
	}
	created, err := svc.CreateLanguage(ctx, input)
	require.NoError(t, err)

	got, err := svc.GetLanguage(ctx, created.Language.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Language.Name, got.Name)
	assert.Equal(t, "integration", got.Seed)
	assert.Equal(t, created.Language.Inventory.Pattern, got.Inventory.Pattern)

	stored, err := svc.ListLexemes(ctx, lexicon.ListLexemesInput{LanguageID: created.Language.ID})
	require.NoError(t, err)
	require.Len(t, stored, 25)

	// Stored forms are exactly the freshly generated ones, in order.
	regenerated, err := svc.Generate(ctx, input)
	require.NoError(t, err)
	for i, l := range stored {
		assert.Equal(t, i, l.Position)
		assert.Equal(t, regenerated.Lexemes[i].Form, l.Form)
		assert.Equal(t, phonology.ConceptName(i), l.Concept)
	}
}

func TestIntegration_Prune(t *testing.T) {
	svc := newIntegrationService(t)
	ctx := context.Background()

	created, err := svc.CreateLanguage(ctx, lexicon.GenerateInput{
		Seed:    phonology.StringSeed("prune-me"),
		Options: phonology.DefaultOptions(),
		Words:   3,
	})
	require.NoError(t, err)

	// Pretend the run happens far in the future so the new language is stale.
	future := created.Language.CreatedAt.Add(365 * 24 * time.Hour)
	n, err := svc.PruneLanguages(ctx, time.Hour, future)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	_, err = svc.GetLanguage(ctx, created.Language.ID)
	assert.Error(t, err)
}
