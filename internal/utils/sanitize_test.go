package utils_test

import (
	"testing"
	"time"

	"github.com/temirov/ctxbundle/internal/utils"
)

func TestSanitizeTagName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "main.go", expected: "main.go"},
		{input: "my file (v2).md", expected: "my_file__v2_.md"},
		{input: "naïve.txt", expected: "na_ve.txt"},
		{input: "docker-compose.prod.yml", expected: "docker-compose.prod.yml"},
		{input: "a<b>c", expected: "a_b_c"},
		{input: "", expected: "_"},
	}
	for _, testCase := range testCases {
		actual := utils.SanitizeTagName(testCase.input)
		if actual != testCase.expected {
			t.Fatalf("SanitizeTagName(%q) = %q, expected %q", testCase.input, actual, testCase.expected)
		}
		if !utils.IsTagName(actual) {
			t.Fatalf("SanitizeTagName(%q) produced unsafe tag %q", testCase.input, actual)
		}
	}
}

func TestIsTagName(t *testing.T) {
	if utils.IsTagName("") {
		t.Fatalf("empty name accepted")
	}
	if utils.IsTagName("a b") {
		t.Fatalf("name with space accepted")
	}
	if !utils.IsTagName("README.md") {
		t.Fatalf("README.md rejected")
	}
}

func TestBundleFileName(t *testing.T) {
	createdAt := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	testCases := []struct {
		label    string
		expected string
	}{
		{label: "my project", expected: "20240305_140709_my_project_2024-03-05.txt"},
		{label: "command_line_files", expected: "20240305_140709_command_line_files_2024-03-05.txt"},
	}
	for _, testCase := range testCases {
		if actual := utils.BundleFileName(createdAt, testCase.label); actual != testCase.expected {
			t.Fatalf("BundleFileName(%q) = %q, expected %q", testCase.label, actual, testCase.expected)
		}
	}
}

func TestNumberedBundleFileName(t *testing.T) {
	createdAt := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	if actual := utils.NumberedBundleFileName(createdAt, "project", 0); actual != utils.BundleFileName(createdAt, "project") {
		t.Fatalf("sequence 0 must match BundleFileName, got %q", actual)
	}
	if actual := utils.NumberedBundleFileName(createdAt, "project", 2); actual != "20240305_140709_project_2024-03-05_2.txt" {
		t.Fatalf("unexpected numbered name %q", actual)
	}
}
