package normalize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestBuildSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":                 "hello-world",
		"  Hello,   World!  ":         "hello-world",
		"Growth Strategy 2024":        "growth-strategy-2024",
		"Crème Brûlée & Café":         "creme-brulee-and-cafe",
		"already-a-slug":              "already-a-slug",
		"snake_case_title":            "snake-case-title",
		"--Dashes -- everywhere--":    "dashes-everywhere",
		"Rock'n'Roll":                 "rocknroll",
		"Straße in Łódź":              "strasse-in-lodz",
		"Next.js + Prisma: a Review?": "nextjs-prisma-a-review",
	}
	for in, want := range cases {
		assert.Equal(t, want, BuildSlug(in), "BuildSlug(%q)", in)
	}
}

func TestBuildSlugTransliteratesNonLatinScripts(t *testing.T) {
	cases := map[string]string{
		"Привет мир": "privet-mir",
		"Αθήνα 2024": "athena-2024",
		"東京 Guide":   "dong-jing-guide",
	}
	for in, want := range cases {
		assert.Equal(t, want, BuildSlug(in), "BuildSlug(%q)", in)
	}

	assert.Empty(t, BuildSlug("!!! ??? ..."))
}

func TestBuildSlug_Shape(t *testing.T) {
	titles := []string{
		"Mixed CASE Title",
		"Punctuation!!! Everywhere??? (really)",
		"\tTabs\tand\nnewlines\n",
		"Ünïcödé Äccents Ønly",
		"100% Growth -- Q3/Q4 #1",
		"Привет, мир!",
		"東京 Guide",
	}
	for _, title := range titles {
		slug := BuildSlug(title)
		assert.Regexp(t, slugPattern, slug, "title %q", title)
		assert.False(t, strings.HasPrefix(slug, "-"))
		assert.False(t, strings.HasSuffix(slug, "-"))
		assert.Equal(t, slug, BuildSlug(title), "slug must be deterministic")
	}
}

func TestParseCSVToArray(t *testing.T) {
	assert.Equal(t, []string{"go", "postgres", "chi"}, ParseCSVToArray(" go, postgres ,, chi,"))
	assert.Equal(t, []string{}, ParseCSVToArray(""))
	assert.Equal(t, []string{}, ParseCSVToArray(" , , "))
}

func TestArrayToCSV(t *testing.T) {
	assert.Equal(t, "go, postgres", ArrayToCSV([]string{"go", "", "postgres"}))
	assert.Equal(t, "", ArrayToCSV(nil))
}

func TestCSVRoundTrip(t *testing.T) {
	lists := [][]string{
		{"design"},
		{"web", "mobile", "cloud native"},
		{},
	}
	for _, list := range lists {
		assert.Equal(t, list, ParseCSVToArray(ArrayToCSV(list)))
	}

	normalized := []string{"a, b, c", "single", "two words, x"}
	for _, s := range normalized {
		assert.Equal(t, s, ArrayToCSV(ParseCSVToArray(s)))
	}
}

func TestCleanList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, CleanList([]string{"  Go ", "", "   ", "SQL"}))
	assert.NotNil(t, CleanList(nil))
}
