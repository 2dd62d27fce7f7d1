package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// installScript copies the shipped pre-commit script into root/git/hook and
// links it from a hooks directory, returning the link path.
func installScript(t *testing.T, root string) string {
	t.Helper()
	script, err := os.ReadFile(filepath.Join("..", "..", "..", "git", "hook", "pre-commit"))
	if err != nil {
		t.Fatalf("reading shipped hook: %v", err)
	}

	source := filepath.Join(root, "git", "hook", "pre-commit")
	writeExecutable(t, source, string(script))

	link := filepath.Join(t.TempDir(), "hooks", "pre-commit")
	if err := os.MkdirAll(filepath.Dir(link), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(source, link); err != nil {
		t.Fatal(err)
	}
	return link
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	writeFile(t, path, content)
	if err := os.Chmod(path, 0o755); err != nil { // #nosec G302 -- test script must be executable
		t.Fatal(err)
	}
}

func runHook(t *testing.T, link, pathDir string) string {
	t.Helper()
	cmd := exec.Command(link, "extra")
	cmd.Env = append(os.Environ(), "PATH="+pathDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("running hook: %v\n%s", err, out)
	}
	return strings.TrimSpace(string(out))
}

func TestHookScript_PrefersInstallRootBinary(t *testing.T) {
	root := t.TempDir()
	link := installScript(t, root)
	writeExecutable(t, filepath.Join(root, "bin", "githook"), "#!/bin/sh\necho \"root $*\"\n")

	pathDir := t.TempDir()
	writeExecutable(t, filepath.Join(pathDir, "githook"), "#!/bin/sh\necho \"path $*\"\n")

	if got := runHook(t, link, pathDir); got != "root check extra" {
		t.Errorf("expected install-root binary to run, got %q", got)
	}
}

func TestHookScript_FallsBackToPath(t *testing.T) {
	root := t.TempDir()
	link := installScript(t, root)

	pathDir := t.TempDir()
	writeExecutable(t, filepath.Join(pathDir, "githook"), "#!/bin/sh\necho \"path $*\"\n")

	if got := runHook(t, link, pathDir); got != "path check extra" {
		t.Errorf("expected PATH binary to run, got %q", got)
	}
}
