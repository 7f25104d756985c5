package diff

import (
	"testing"
)

const sampleDiff = `diff --git a/hello.go b/hello.go
new file mode 100644
index 0000000..e69de29
--- /dev/null
+++ b/hello.go
@@ -0,0 +1,11 @@
+package main
+
+import "fmt"
+
+func main() {
+	fmt.Println("hello")
+}
+
+func add(a, b int) int {
+	return a + b
+}
diff --git a/readme.md b/readme.md
index abc1234..def5678 100644
--- a/readme.md
+++ b/readme.md
@@ -1,3 +1,4 @@
 # Project

-Old description
+New description
+Added line
`

const renameDiff = `diff --git a/old.js b/new.js
similarity index 100%
rename from old.js
rename to new.js
`

func TestParse(t *testing.T) {
	s, err := Parse(sampleDiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(s.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(s.Files))
	}

	f0 := s.Files[0]
	if !f0.IsNew {
		t.Error("expected hello.go to be new")
	}
	if f0.Path() != "hello.go" {
		t.Errorf("expected path 'hello.go', got %q", f0.Path())
	}
	if f0.Added != 11 {
		t.Errorf("expected 11 added lines, got %d", f0.Added)
	}

	f1 := s.Files[1]
	if f1.Path() != "readme.md" {
		t.Errorf("expected path 'readme.md', got %q", f1.Path())
	}
	if f1.Added != 2 {
		t.Errorf("expected 2 added lines, got %d", f1.Added)
	}
	if f1.Deleted != 1 {
		t.Errorf("expected 1 deleted line, got %d", f1.Deleted)
	}

	files, added, deleted := s.Stats()
	if files != 2 {
		t.Errorf("stats: expected 2 files, got %d", files)
	}
	if added != 13 {
		t.Errorf("stats: expected 13 added, got %d", added)
	}
	if deleted != 1 {
		t.Errorf("stats: expected 1 deleted, got %d", deleted)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n"} {
		s, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", raw, err)
		}
		if len(s.Files) != 0 {
			t.Errorf("Parse(%q): expected 0 files, got %d", raw, len(s.Files))
		}
	}
}

func TestParsePureRename(t *testing.T) {
	s, err := Parse(renameDiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(s.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(s.Files))
	}

	f := s.Files[0]
	if !f.IsRenamed {
		t.Error("expected a rename")
	}
	if f.Path() != "new.js" {
		t.Errorf("expected canonical path 'new.js', got %q", f.Path())
	}
	if f.OldPath != "old.js" {
		t.Errorf("expected old path 'old.js', got %q", f.OldPath)
	}
	if f.Added != 0 || f.Deleted != 0 {
		t.Errorf("pure rename should have no line changes, got +%d -%d", f.Added, f.Deleted)
	}
	if f.Name() != "old.js → new.js" {
		t.Errorf("unexpected display name %q", f.Name())
	}
}

func TestParseConcatenated(t *testing.T) {
	s, err := Parse(sampleDiff + "\n" + renameDiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(s.Files) != 3 {
		t.Fatalf("expected 3 files from concatenated diffs, got %d", len(s.Files))
	}
}
