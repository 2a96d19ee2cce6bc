package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/ctxbundle/internal/cli"
	"github.com/temirov/ctxbundle/internal/utils"
)

// main is the entry point for the ctxbundle command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage, zap.Error(applicationExecutionError))
	}
	syncLogger(loggerInstance)
}

// syncLogger flushes the logger when stderr can be synced; pipes and character devices reject fsync.
func syncLogger(loggerInstance *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	_ = loggerInstance.Sync()
}

func isRegularFile(file *os.File) bool {
	fileInfo, statErr := file.Stat()
	if statErr != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
