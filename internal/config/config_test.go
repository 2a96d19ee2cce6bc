package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/ctxbundle/internal/utils"
)

func TestLoadIgnoreFilePatterns(t *testing.T) {
	directory := t.TempDir()
	content := "# build output\n\n  secret.txt  \n*.log\n   # indented comment\nsecret.txt\ntmp\n"
	if err := os.WriteFile(filepath.Join(directory, utils.GitIgnoreFileName), []byte(content), 0o600); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	patterns, err := LoadRootGitIgnorePatterns(directory)
	if err != nil {
		t.Fatalf("LoadRootGitIgnorePatterns error: %v", err)
	}
	expected := []string{"secret.txt", "*.log", "tmp"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Fatalf("expected %v, got %v", expected, patterns)
	}
}

func TestLoadIgnoreFilePatternsKeepsGitIgnoreSyntaxVerbatim(t *testing.T) {
	ignorePath := filepath.Join(t.TempDir(), ".ignore")
	if err := os.WriteFile(ignorePath, []byte("!keep.txt\n/anchored\nbuild/\n"), 0o600); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}
	patterns, err := LoadIgnoreFilePatterns(ignorePath)
	if err != nil {
		t.Fatalf("LoadIgnoreFilePatterns error: %v", err)
	}
	expected := []string{"!keep.txt", "/anchored", "build/"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Fatalf("expected %v, got %v", expected, patterns)
	}
}

func TestLoadRootGitIgnorePatternsMissingFile(t *testing.T) {
	patterns, err := LoadRootGitIgnorePatterns(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error for a missing .gitignore, got %v", err)
	}
	if len(patterns) != 0 {
		t.Fatalf("expected no patterns, got %v", patterns)
	}
}

func TestLoadRootGitIgnorePatternsUnreadable(t *testing.T) {
	directory := t.TempDir()
	if err := os.Mkdir(filepath.Join(directory, utils.GitIgnoreFileName), 0o755); err != nil {
		t.Fatalf("create .gitignore directory: %v", err)
	}
	if _, err := LoadRootGitIgnorePatterns(directory); err == nil {
		t.Fatalf("expected an error when .gitignore is a directory")
	}
}
