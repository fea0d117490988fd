package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gc "github.com/kayac/go-config"
	"github.com/mashiike/pairmap"
)

func LoadString(t *testing.T, path string) string {
	t.Helper()
	bs, err := gc.ReadWithEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(bs)
}

func YAML2JSON(t *testing.T, str string) string {
	t.Helper()
	j, err := pairmap.YAML2JSON([]byte(str))
	if err != nil {
		t.Fatal(err)
	}
	return string(j)
}

// CopyFiles copies files into a temporary directory and returns its path.
func CopyFiles(t *testing.T, paths ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, path := range paths {
		bs, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, filepath.Base(path)), bs, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func LoggerSetup(t *testing.T, minLevel string) {
	t.Helper()
	var buf bytes.Buffer
	cleanup, err := pairmap.LoggerSetup(&buf, minLevel)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cleanup()
		if buf.Len() > 0 {
			t.Log(buf.String())
		}
	})
}
