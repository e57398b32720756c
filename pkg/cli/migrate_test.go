package cli

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/repository/firestore"
)

func TestGetIndexConfig(t *testing.T) {
	t.Run("indexes target the repository's change collection", func(t *testing.T) {
		cfg := getIndexConfig("staging")
		gt.Number(t, len(cfg.Collections)).Equal(1)
		gt.Value(t, cfg.Collections[0].Name).Equal(firestore.ChangesCollection("staging"))
		gt.Value(t, cfg.Collections[0].Name).Equal("staging_score_changes")
	})

	t.Run("no prefix", func(t *testing.T) {
		cfg := getIndexConfig("")
		gt.Value(t, cfg.Collections[0].Name).Equal("score_changes")
	})
}
