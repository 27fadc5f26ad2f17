package bgg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNames(t *testing.T) {
	t.Run("primary tag wins", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "CATAN", Type: "primary"},
			{Value: "カタン", Type: "alternate"},
			{Value: "Catan", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "CATAN", names.Primary)
		assert.Equal(t, "カタン", names.Japanese)
		assert.Equal(t, "Catan", names.English)
	})

	t.Run("first primary tag wins over later ones", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "First", Type: "primary"},
			{Value: "Second", Type: "primary"},
		})
		require.NoError(t, err)
		assert.Equal(t, "First", names.Primary)
	})

	t.Run("first japanese candidate wins", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "カタン", Type: "alternate"},
			{Value: "かたん", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "カタン", names.Japanese)
		assert.Equal(t, []string{"かたん"}, names.Alternates)
	})

	t.Run("primary backfills from japanese first", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "Catan", Type: "alternate"},
			{Value: "カタン", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "カタン", names.Primary)
	})

	t.Run("primary backfills from english when no japanese", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "Catan", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Catan", names.Primary)
		assert.Equal(t, "Catan", names.English)
	})

	t.Run("primary backfills from first unclassified candidate", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "카탄", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "카탄", names.Primary)
		assert.Empty(t, names.Japanese)
		assert.Empty(t, names.English)
	})

	t.Run("alternates deduplicated and exclude chosen names", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "Catan", Type: "primary"},
			{Value: "カタン", Type: "alternate"},
			{Value: "Die Siedler von Catan!?", Type: "alternate"},
			{Value: "Die Siedler von Catan!?", Type: "alternate"},
			{Value: "Los Colonos de Catán", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Catan", names.Primary)
		assert.Equal(t, []string{"Die Siedler von Catan!?", "Los Colonos de Catán"}, names.Alternates)
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		names, err := ResolveNames([]NameCandidate{
			{Value: "", Type: "primary"},
			{Value: "Catan", Type: "alternate"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Catan", names.Primary)
	})

	t.Run("no usable names is an error", func(t *testing.T) {
		_, err := ResolveNames([]NameCandidate{
			{Value: "", Type: "primary"},
			{Value: "", Type: "alternate"},
		})
		assert.ErrorIs(t, err, ErrNoNameFound)

		_, err = ResolveNames(nil)
		assert.ErrorIs(t, err, ErrNoNameFound)
	})
}

func TestNameSetDisplay(t *testing.T) {
	full := NameSet{Primary: "CATAN", Japanese: "カタン", English: "Catan"}

	tests := []struct {
		name     string
		names    NameSet
		locale   string
		expected string
	}{
		{"ja locale prefers japanese", full, "ja", "カタン"},
		{"en locale prefers english", full, "en", "Catan"},
		{"ja without japanese falls back to english", NameSet{Primary: "CATAN", English: "Catan"}, "ja", "Catan"},
		{"no english falls back to primary", NameSet{Primary: "카탄"}, "en", "카탄"},
		{"japanese as last resort", NameSet{Japanese: "カタン"}, "en", "カタン"},
		{"unknown locale uses english", full, "de", "Catan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.names.Display(tt.locale))
		})
	}
}
