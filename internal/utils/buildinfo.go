package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion      = "unknown"
	develBuildVersion   = "(devel)"
	gitExecutableName   = "git"
	gitDescribeCommand  = "describe"
	gitDescribeTagsFlag = "--tags"
)

var gitDescribeVariants = [][]string{
	{"--exact-match"},
	{"--long", "--dirty"},
}

// GetApplicationVersion reports the ctxbundle version from Go build info, falling back to
// `git describe` when running from a source checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != develBuildVersion {
		return buildInfo.Main.Version
	}

	repositoryRoot, found := findRepositoryRoot(".")
	if !found {
		return unknownVersion
	}
	for _, variant := range gitDescribeVariants {
		if described := describeRevision(repositoryRoot, variant); described != "" {
			return described
		}
	}
	return unknownVersion
}

func describeRevision(repositoryRoot string, extraArguments []string) string {
	arguments := append([]string{gitDescribeCommand, gitDescribeTagsFlag}, extraArguments...)
	// #nosec G204
	describeCommand := exec.Command(gitExecutableName, arguments...)
	describeCommand.Dir = repositoryRoot
	describeOutput, describeError := describeCommand.Output()
	if describeError != nil {
		return ""
	}
	return strings.TrimSpace(string(describeOutput))
}

// findRepositoryRoot walks upward from startDirectory to the first directory holding a .git folder.
func findRepositoryRoot(startDirectory string) (string, bool) {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", false
	}
	for {
		fileInformation, statError := os.Stat(filepath.Join(currentDirectory, GitDirectoryName))
		if statError == nil && fileInformation.IsDir() {
			return currentDirectory, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return "", false
		}
		currentDirectory = parentDirectory
	}
}
