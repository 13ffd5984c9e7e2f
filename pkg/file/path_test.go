package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathExistOrCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runtime", "log")

	exist, err := PathExists(dir)
	if err != nil || exist {
		t.Fatalf("PathExists() = %v, %v before creation", exist, err)
	}
	if err := PathExistOrCreate(dir); err != nil {
		t.Fatalf("PathExistOrCreate() error = %v", err)
	}
	// second call is a no-op
	if err := PathExistOrCreate(dir); err != nil {
		t.Fatalf("PathExistOrCreate() error = %v", err)
	}
	if exist, _ := PathExists(dir); !exist {
		t.Errorf("PathExists() = false after creation")
	}
}

func TestOpenAppend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := OpenAppend(dir, "tiles.log")
		if err != nil {
			t.Fatalf("OpenAppend() error = %v", err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatalf("WriteString() error = %v", err)
		}
		f.Close()
	}

	content, err := os.ReadFile(filepath.Join(dir, "tiles.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "first\nsecond\n" {
		t.Errorf("content = %q, want both lines appended", content)
	}
}
