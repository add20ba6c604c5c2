package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Categories, 4)
	assert.Equal(t, 12, cat.Len())

	names := make([]string, 0, len(cat.Categories))
	for _, c := range cat.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		CategoryAppearance,
		CategoryAttitude,
		CategoryBehavior,
		CategorySomatic,
	}, names)
}

func TestDefaultCatalogOrdering(t *testing.T) {
	items := Default().Items()
	require.Len(t, items, 12)

	for i, it := range items {
		assert.Equal(t, fmt.Sprintf("Q%d", i+1), it.ID)
	}
}

func TestDefaultCatalogScoring(t *testing.T) {
	for _, it := range Default().Items() {
		require.Len(t, it.Options, 4, "item %s", it.ID)
		assert.Equal(t, 4, it.Options[0].Score, "item %s option A", it.ID)
		assert.Equal(t, 1, it.Options[3].Score, "item %s option D", it.ID)
		assert.Equal(t, "A", it.LeastSevereOption().Label, "item %s", it.ID)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
categories:
  - name: Mood
    items:
      - id: m1
        intent: general mood over the past week
        options:
          - {label: A, text: great, score: 4}
          - {label: B, text: okay, score: 3}
          - {label: C, text: low, score: 2}
          - {label: D, text: very low, score: 1}
`)
	cat, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())

	item, ok := cat.ItemByID("m1")
	require.True(t, ok)
	// Omitted category field is filled from the enclosing category.
	assert.Equal(t, "Mood", item.Category)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", `categories: []`},
		{"no options", `
categories:
  - name: Mood
    items:
      - id: m1
        intent: general mood
        options: []
`},
		{"score out of range", `
categories:
  - name: Mood
    items:
      - id: m1
        intent: general mood
        options:
          - {label: A, text: great, score: 5}
`},
		{"duplicate ids", `
categories:
  - name: Mood
    items:
      - id: m1
        intent: one
        options: [{label: A, text: x, score: 4}]
      - id: m1
        intent: two
        options: [{label: A, text: x, score: 4}]
`},
		{"not yaml", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cat.Len())
}
