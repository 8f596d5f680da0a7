package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   .keel/cache/x
	//   ignored/file
	//   src/main.cs
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, ".keel", "cache", "x"), "cached")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.cs"), "class Main {}")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()
	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[filepath.ToSlash(rel)] = true
	}

	for _, skipped := range []string{".git/config", ".keel/cache/x", "ignored/file"} {
		if files[skipped] {
			t.Errorf("expected %s to be skipped", skipped)
		}
	}
	for _, found := range []string{"src/main.cs", "README.md"} {
		if !files[found] {
			t.Errorf("expected %s to be found", found)
		}
	}
}

func TestLocalDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a", "one.txt"), "one")
	writeFile(t, filepath.Join(tmpDir, "b", "nested", "two.txt"), "two!")
	writeFile(t, filepath.Join(tmpDir, "top.txt"), "top")

	dir, err := fs.NewLocalDirectory(tmpDir, fs.NewWalker())
	if err != nil {
		t.Fatal(err)
	}

	children, err := dir.ChildDirectories()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(children, []string{"a", "b"}) {
		t.Errorf("unexpected children: %v", children)
	}

	files, err := dir.Files()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(files, []string{"a/one.txt", "b/nested/two.txt", "top.txt"}) {
		t.Errorf("unexpected files: %v", files)
	}

	if !dir.Exists("b/nested/two.txt") || dir.Exists("missing.txt") {
		t.Error("unexpected Exists result")
	}

	size, err := dir.FileSize("b/nested/two.txt")
	if err != nil || size != 4 {
		t.Errorf("expected size 4, got %d (%v)", size, err)
	}

	w, err := dir.Create("new/deep/file.bin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := dir.OpenRead("new/deep/file.bin")
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil || string(data) != "payload" {
		t.Errorf("unexpected content %q (%v)", data, err)
	}

	child, err := dir.ChildDirectory("b", false)
	if err != nil {
		t.Fatal(err)
	}
	rel, err := child.RelativePath(filepath.Join(tmpDir, "b", "nested", "two.txt"))
	if err != nil || rel != "nested/two.txt" {
		t.Errorf("unexpected relative path %q (%v)", rel, err)
	}

	if _, err := dir.ChildDirectory("missing", false); err == nil {
		t.Error("expected error for missing child directory")
	}
	created, err := dir.ChildDirectory("made", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(created.Path()); err != nil {
		t.Errorf("expected created directory: %v", err)
	}

	if err := dir.Remove("new"); err != nil {
		t.Fatal(err)
	}
	if dir.Exists("new/deep/file.bin") {
		t.Error("expected removed tree")
	}
}

func TestLocalDirectory_RejectsEscapes(t *testing.T) {
	dir, err := fs.NewLocalDirectory(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := dir.OpenRead("../outside"); !errors.Is(err, domain.ErrPathOutsideRoot) {
		t.Errorf("expected ErrPathOutsideRoot, got %v", err)
	}
	if _, err := dir.RelativePath(filepath.Dir(dir.Path())); !errors.Is(err, domain.ErrPathOutsideRoot) {
		t.Errorf("expected ErrPathOutsideRoot, got %v", err)
	}
}

func TestHasher_CreateSourceSetFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "src", "a.cs"), "class A {}")
	writeFile(t, filepath.Join(tmpDir, "src", "b.cs"), "class B {}")

	dir, err := fs.NewLocalDirectory(tmpDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	hasher := fs.NewHasher(dir, 2)

	set := domain.NewSourceSet("cs")
	set.Add("src/b.cs")
	set.Add("src/a.cs")

	fp1, err := hasher.CreateSourceSetFingerprint(set)
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := hasher.CreateSourceSetFingerprint(set)
	if err != nil {
		t.Fatal(err)
	}
	if !fp1.Equal(fp2) {
		t.Error("expected deterministic fingerprint")
	}

	stamps := fp1.(*fingerprint.SourceSet).Files()
	if len(stamps) != 2 || stamps[0].Path != "src/a.cs" || stamps[0].Size != 10 || stamps[0].Checksum == 0 {
		t.Errorf("unexpected stamps: %+v", stamps)
	}

	// Same size, different content.
	writeFile(t, filepath.Join(tmpDir, "src", "a.cs"), "class Z {}")
	fp3, err := hasher.CreateSourceSetFingerprint(set)
	if err != nil {
		t.Fatal(err)
	}
	if fp1.Equal(fp3) {
		t.Error("expected fingerprint to change when file content changes")
	}

	set.Add("src/missing.cs")
	if _, err := hasher.CreateSourceSetFingerprint(set); err == nil {
		t.Error("expected error for missing file")
	}
}
