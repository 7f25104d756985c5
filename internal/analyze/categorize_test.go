package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		path string
		want Bucket
	}{
		{"README.md", BucketDocs},
		{"docs/guide.rst", BucketDocs},
		{"CHANGELOG", BucketDocs},
		{"test/app.js", BucketTest},
		{"src/user.spec.ts", BucketTest},
		{"src/__tests__/helpers.js", BucketTest},
		{"config/settings.js", BucketConfig},
		{"package.json", BucketConfig},
		{"ci.yaml", BucketConfig},
		{"Dockerfile", BucketConfig},
		{"web/site.css", BucketStyle},
		{"theme.scss", BucketStyle},
		{"src/app.js", BucketSource},
		{"main.go", BucketSource},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, cfg.BucketFor(tc.path), "path %s", tc.path)
	}
}

func TestBucketPriorityOrder(t *testing.T) {
	cfg := DefaultConfig()

	// A markdown file under test/ is documentation: doc rules run first.
	assert.Equal(t, BucketDocs, cfg.BucketFor("test/README.md"))
	// A test json fixture is test, not configuration.
	assert.Equal(t, BucketTest, cfg.BucketFor("test/fixture.json"))
}

func TestBucketForDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < 100; i++ {
		assert.Equal(t, BucketConfig, cfg.BucketFor("deploy.yml"))
	}
}

func TestCategorizeCoversEveryPathOnce(t *testing.T) {
	cfg := DefaultConfig()
	paths := []string{"README.md", "src/a.go", "src/b.go", "test/a_test.go", "style.css"}

	got := cfg.Categorize(paths)

	total := 0
	for _, ps := range got {
		total += len(ps)
	}
	assert.Equal(t, len(paths), total)
	assert.Equal(t, []string{"src/a.go", "src/b.go"}, got[BucketSource])
}

func TestCategorizeCustomRules(t *testing.T) {
	cfg := Config{
		Rules: []CategoryRule{
			{Bucket: BucketDocs, Extensions: []string{".txt"}},
		},
	}

	assert.Equal(t, BucketDocs, cfg.BucketFor("notes.txt"))
	// Everything the table misses is source, including defaults' buckets.
	assert.Equal(t, BucketSource, cfg.BucketFor("site.css"))
}
