package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar-engine/internal/domain"
)

func TestClassifyKnownTitles(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Funciones del cargo", "responsibilities"},
		{"Requisitos", "requirements"},
		{"Deseables", "nice_to_have"},
		{"Beneficios", "benefits"},
		{"What you'll do", "responsibilities"},
		{"Nice to have", "nice_to_have"},
		{"Benefits", "benefits"},
		{"Candidate profile", "candidate_profile"},
	}
	for _, tc := range tests {
		got, ok := Classify(tc.title, DefaultMinScore)
		require.True(t, ok, "title %q", tc.title)
		assert.Equal(t, tc.want, got, "title %q", tc.title)
	}
}

func TestClassifyCaseAndAccentInsensitive(t *testing.T) {
	variants := []string{
		"FUNCIONES DEL CARGO",
		"funciones del cargo",
		"Funciones del Cárgo",
	}
	for _, v := range variants {
		got, ok := Classify(v, DefaultMinScore)
		require.True(t, ok, "variant %q", v)
		assert.Equal(t, "responsibilities", got, "variant %q", v)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first, ok1 := Classify("Beneficios y cultura", DefaultMinScore)
	second, ok2 := Classify("Beneficios y cultura", DefaultMinScore)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestClassifyThresholdIsClosed(t *testing.T) {
	// an exact phrase scores 100, so it passes a threshold of exactly 100
	got, ok := Classify("beneficios", 100)
	require.True(t, ok)
	assert.Equal(t, "benefits", got)

	// an unreachable threshold rejects even a perfect match
	_, ok = Classify("beneficios", 101)
	assert.False(t, ok)
}

func TestClassifyNoMatch(t *testing.T) {
	_, ok := Classify("Link a un video", DefaultMinScore)
	assert.False(t, ok)

	_, ok = Classify("", DefaultMinScore)
	assert.False(t, ok)
}

func TestClassifyTieBreakIsFirstCategoryInOrder(t *testing.T) {
	// "proceso de selección" is a curated phrase under both how_to_apply
	// and selection_process; how_to_apply is declared earlier, so it wins
	got, ok := Classify("Proceso de selección", DefaultMinScore)
	require.True(t, ok)
	assert.Equal(t, "how_to_apply", got)
}

func TestClassifyLongInputUsesTitlePrefix(t *testing.T) {
	long := "Funciones del cargo " + strings.Repeat("palabra relleno ", 80)
	got, ok := Classify(long, DefaultMinScore)
	require.True(t, ok)
	assert.Equal(t, "responsibilities", got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Funciones del Cárgo", "funciones del cargo"},
		{"  ¿Qué harás? ", "que haras"},
		{"🚀 Beneficios!!", "beneficios"},
		{"nice-to-have", "nice-to-have"},
		{"what you'll do", "what you'll do"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestMergeSections(t *testing.T) {
	sections := []domain.Section{
		{Title: "Beneficios", Content: "Seguro de salud."},
		{Title: "Requisitos", Content: "Go y SQL."},
		{Title: "Benefits", Content: "Stock options."},
		{Title: "Link a un video", Content: "https://video.example"},
	}

	out := MergeSections(sections, DefaultMinScore)

	// same category concatenates in document order, blank-line separated
	assert.Equal(t, "Seguro de salud.\n\nStock options.", out["benefits"])
	assert.Equal(t, "Go y SQL.", out["requirements"])

	// no match: routed to others with the original title preserved
	assert.Equal(t, "[Link a un video]\nhttps://video.example", out["others"])

	// every section lands in exactly one category
	total := 0
	for _, content := range out {
		total += strings.Count(content, "Seguro") +
			strings.Count(content, "Go y SQL") +
			strings.Count(content, "Stock") +
			strings.Count(content, "video.example")
	}
	assert.Equal(t, len(sections), total)
}

func TestMergeSectionsEmpty(t *testing.T) {
	out := MergeSections(nil, DefaultMinScore)
	assert.Empty(t, out)
}

func TestCategoriesCoverPatternTable(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories {
		assert.NotEmpty(t, patterns[c], "category %q has no phrases", c)
		seen[c] = true
	}
	for c := range patterns {
		assert.True(t, seen[c], "pattern category %q missing from scan order", c)
	}
}
