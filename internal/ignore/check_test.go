package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultMatcher(t *testing.T, root string) *Matcher {
	t.Helper()
	patterns, err := CompilePatterns(DefaultPatterns)
	if err != nil {
		t.Fatalf("CompilePatterns(DefaultPatterns) failed: %v", err)
	}
	m, err := New(root, WithPatterns(patterns))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestShouldIgnorePatterns(t *testing.T) {
	m := defaultMatcher(t, t.TempDir())

	tests := []struct {
		name    string
		path    string
		isDir   bool
		ignored bool
	}{
		{"LICENSE", "proj/LICENSE", false, true},
		{"LICENSE.md", "proj/LICENSE.md", false, false}, // ^LICENSE$ is exact
		{".gitignore", "proj/.gitignore", false, true},
		{".git", "proj/.git", true, true},
		{"notebook.ipynb", "proj/notebook.ipynb", false, true},
		{"cache.pyc", "proj/cache.pyc", false, true},
		{"go.sum", "proj/go.sum", false, true},
		{".env", "proj/.env", false, true},
		{"x.env", "proj/x.env", false, false},
		{"__pycache__", "proj/__pycache__", true, true},
		{".terraform", "proj/.terraform", true, true},
		{".terraform.lock.hcl", "proj/.terraform.lock.hcl", false, true},
		{"main.go", "proj/main.go", false, false},
		{"readme.txt", "proj/readme.txt", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.ShouldIgnore(tc.name, tc.path, tc.isDir); got != tc.ignored {
				t.Errorf("ShouldIgnore(%q, %q) = %v, want %v", tc.name, tc.path, got, tc.ignored)
			}
		})
	}
}

func TestShouldIgnorePrefixSemantics(t *testing.T) {
	// A pattern matches when it matches a prefix of the name or path, not
	// only the whole string.
	patterns, err := CompilePatterns([]string{`sub`})
	if err != nil {
		t.Fatalf("CompilePatterns failed: %v", err)
	}
	m, err := New(t.TempDir(), WithPatterns(patterns))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !m.ShouldIgnore("subdir", "proj/subdir", true) {
		t.Error("pattern should prefix-match the name 'subdir'")
	}
	if !m.ShouldIgnore("main.go", "sub/main.go", false) {
		t.Error("pattern should prefix-match the path 'sub/main.go'")
	}
	if m.ShouldIgnore("main.go", "proj/sub/main.go", false) {
		t.Error("prefix matching must start at the beginning of the path")
	}
}

func TestShouldIgnoreBlacklist(t *testing.T) {
	// No patterns at all: only the blacklist applies. This is the
	// structure-all configuration.
	m, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !m.ShouldIgnore(".git", "/some/where/.git", true) {
		t.Error(".git must be blacklisted by basename")
	}
	if !m.ShouldIgnore("node_modules", "/some/where/node_modules", true) {
		t.Error("node_modules must be blacklisted by basename")
	}
	if m.ShouldIgnore("LICENSE", "/some/where/LICENSE", false) {
		t.Error("LICENSE is a pattern rule, not a blacklist rule")
	}
	if m.ShouldIgnore("main.go", "/some/where/main.go", false) {
		t.Error("regular file must pass a pattern-free matcher")
	}
}

func TestShouldIgnoreRoot(t *testing.T) {
	m := defaultMatcher(t, t.TempDir())

	if m.ShouldIgnore("", "", false) || m.ShouldIgnore(".", ".", true) {
		t.Error("the root itself must never be ignored")
	}
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	if m.ShouldIgnore(".git", ".git", true) {
		t.Error("nil matcher must ignore nothing")
	}
	if IsIgnored(nil, ".git", ".git", true) {
		t.Error("IsIgnored on nil matcher must be false")
	}
}

func TestCompilePatternsRejectsMalformed(t *testing.T) {
	if _, err := CompilePatterns([]string{`valid`, `(`}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestGitignoreRules(t *testing.T) {
	root := t.TempDir()
	rules := "*.log\n!keep.log\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(rules), 0o644); err != nil {
		t.Fatalf("writing .gitignore: %v", err)
	}
	for _, name := range []string{"app.log", "keep.log"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x\n"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	m, err := New(root, WithGitignore(true))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !m.ShouldIgnore("app.log", filepath.Join(root, "app.log"), false) {
		t.Error("app.log must be excluded by the repository rules")
	}
	if m.ShouldIgnore("keep.log", filepath.Join(root, "keep.log"), false) {
		t.Error("keep.log is re-included by the negation rule")
	}
	if m.ShouldIgnore("app.txt", filepath.Join(root, "app.txt"), false) {
		t.Error("app.txt must not be excluded")
	}
}
