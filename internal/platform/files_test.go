package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDefaultContentPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultContentPath()
	if err != nil {
		t.Fatalf("Failed to get default content path: %v", err)
	}

	if filepath.Base(path) != ContentFileName {
		t.Errorf("Expected path to end with %s, got: %s", ContentFileName, path)
	}
	if filepath.Base(filepath.Dir(path)) != AppDirName {
		t.Errorf("Expected parent directory %s, got: %s", AppDirName, path)
	}
}

func TestWriteFileAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", ContentFileName)

	if err := WriteFileAll(path, []byte("planets: []\n"), false); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != "planets: []\n" {
		t.Errorf("Unexpected file content: %q", data)
	}

	// Existing file is kept without overwrite
	err = WriteFileAll(path, []byte("changed"), false)
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("Expected os.ErrExist, got: %v", err)
	}

	if err := WriteFileAll(path, []byte("changed"), true); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "changed" {
		t.Errorf("Expected overwritten content, got %q", data)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.yaml")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got: %v", err)
	}
}
