package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("namespace Acme;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesFindsSortedCSharpSources(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "src/Zebra.cs")
	writeFile(t, root, "src/Alpha.cs")
	writeFile(t, root, "Program.cs")
	writeFile(t, root, "README.md")
	writeFile(t, root, "src/notes.txt")

	got, err := Files(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Program.cs", "src/Alpha.cs", "src/Zebra.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesSkipsBuildAndDotDirs(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "src/Keep.cs")
	writeFile(t, root, "bin/Debug/Skip.cs")
	writeFile(t, root, "obj/Skip.cs")
	writeFile(t, root, "packages/Dep/Skip.cs")
	writeFile(t, root, ".vs/Skip.cs")
	writeFile(t, root, ".hidden/Skip.cs")
	writeFile(t, root, "src/.Hidden.cs")

	got, err := Files(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"src/Keep.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesCaseInsensitiveExtension(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "src/Upper.CS")

	got, err := Files(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "src/Upper.CS" {
		t.Errorf("Files = %v", got)
	}
}

func TestFilesHonorsGitignore(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "src/Keep.cs")
	writeFile(t, root, "generated/Skip.cs")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Files(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"src/Keep.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesEmptyTree(t *testing.T) {
	t.Parallel()
	got, err := Files(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Files = %v, want none", got)
	}
}
