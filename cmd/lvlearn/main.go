package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlearn/internal/commands"
	"github.com/katalvlaran/lvlearn/internal/logger"
)

const (
	errCommandError = 1
	errSetup        = 2
)

func main() {
	log := logger.New("lvlearn")

	root, err := commands.NewRootCmd(log)
	if err != nil {
		errorExit(log, err, errSetup)
	}

	if err = root.ExecuteContext(context.Background()); err != nil {
		errorExit(log, err, errCommandError)
	}
	log.Flush()
}

func errorExit(log *logger.Logger, err error, code int) {
	log.Error(err, "command failed")
	log.Flush()
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}
