package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/bethropolis/treedump/internal/ignore"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string][]byte{
		"a.txt":           []byte("alpha\n"),
		"skip.pyc":        []byte("compiled\n"),
		".git/hidden.txt": []byte("secret\n"),
		"sub/c.txt":       []byte("gamma\n"),
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return root
}

func defaultMatcher(t *testing.T, root string) *ignore.Matcher {
	t.Helper()
	patterns, err := ignore.CompilePatterns(ignore.DefaultPatterns)
	if err != nil {
		t.Fatalf("CompilePatterns failed: %v", err)
	}
	m, err := ignore.New(root, ignore.WithPatterns(patterns))
	if err != nil {
		t.Fatalf("ignore.New failed: %v", err)
	}
	return m
}

func TestWalkVisitsOnlySurvivingFiles(t *testing.T) {
	root := fixtureDir(t)

	visited := map[string][]byte{}
	skipped, err := Walk(root, defaultMatcher(t, root), func(path string, content []byte, err error) error {
		if err != nil {
			t.Errorf("unexpected per-file error for %s: %v", path, err)
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			t.Fatalf("rel of %s: %v", path, relErr)
		}
		visited[filepath.ToSlash(rel)] = content
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	var got []string
	for rel := range visited {
		got = append(got, rel)
	}
	sort.Strings(got)

	want := []string{"a.txt", "sub/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}

	if string(visited["a.txt"]) != "alpha\n" {
		t.Errorf("a.txt content = %q, want %q", visited["a.txt"], "alpha\n")
	}

	// .git is pruned as a directory, so hidden.txt is never even evaluated.
	for _, item := range skipped {
		if filepath.Base(item.Path) == "hidden.txt" {
			t.Errorf("hidden.txt was evaluated despite its parent being pruned: %+v", skipped)
		}
	}
}

func TestWalkTracksSkippedItems(t *testing.T) {
	root := fixtureDir(t)

	skipped, err := Walk(root, defaultMatcher(t, root), func(string, []byte, error) error { return nil })
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	bases := map[string]SkippedReason{}
	for _, item := range skipped {
		bases[filepath.Base(item.Path)] = item.Reason
	}

	if reason, ok := bases[".git"]; !ok || reason != ReasonIgnoredRule {
		t.Errorf(".git skip not tracked, got %v", bases)
	}
	if reason, ok := bases["skip.pyc"]; !ok || reason != ReasonIgnoredRule {
		t.Errorf("skip.pyc skip not tracked, got %v", bases)
	}
}

func TestWalkNilMatcher(t *testing.T) {
	root := fixtureDir(t)

	var count int
	if _, err := Walk(root, nil, func(string, []byte, error) error { count++; return nil }); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if count != 4 {
		t.Errorf("unfiltered walk visited %d files, want 4", count)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	var count int
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), nil, func(string, []byte, error) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Walk on missing root must not fail, got %v", err)
	}
	if count != 0 {
		t.Errorf("missing root visited %d files, want 0", count)
	}
}
