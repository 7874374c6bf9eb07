package util

import (
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit checks the provided error. If it's `nil` it simply
// returns. Otherwise it logs the error at `log.FatalLevel` and exits
// immediately. The exit code is unwrapped from a `flags.Error` when there is
// one; any other kind of error exits with the generic code 99.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}
