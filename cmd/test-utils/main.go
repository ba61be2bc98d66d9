package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/test-utils/cmd/test-utils/command"
	"github.com/shini4i/test-utils/internal/app"
	"github.com/shini4i/test-utils/internal/helpers"
)

const loggerName = "test-utils"

var (
	version = "local"
	log     = logging.MustGetLogger(loggerName)
	format  = logging.MustStringFormatter(
		`%{color}%{message}%{color:reset}`,
	)
)

// loggingInit sends log output to stderr; stdout is reserved for paths and file contents.
func loggingInit(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	logBackend := logging.AddModuleLevel(backendFormatter)
	logBackend.SetLevel(level, "")
	logging.SetBackend(logBackend)
}

func newRunner(cfg app.Config) (command.Runner, error) {
	a, err := app.New(cfg, app.Dependencies{Logger: log})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func main() {
	opts := command.Options{
		Version:     version,
		TempDirBase: helpers.GetEnv("TEST_UTILS_TMPDIR", os.TempDir()),
		NewRunner:   newRunner,
		InitLogging: func(debug bool) {
			if debug {
				loggingInit(logging.DEBUG)
			} else {
				loggingInit(logging.INFO)
			}
		},
	}

	if err := command.Execute(opts, nil); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
