package logger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	levelStrings = map[string]zapcore.Level{
		"debug": zap.DebugLevel,
		"info":  zap.InfoLevel,
		"error": zap.ErrorLevel,
	}
)

type levelFlagValue struct {
	// Called once the flag value has been parsed into a level.
	onLevelAvailable func(zapcore.Level)
	value            string
}

func newLevelFlagValue(onLevelAvailable func(zapcore.Level)) levelFlagValue {
	return levelFlagValue{
		onLevelAvailable: onLevelAvailable,
	}
}

func (lfv *levelFlagValue) Set(flagValue string) error {
	level, namedLevel := levelStrings[strings.ToLower(flagValue)]

	if !namedLevel {
		logLevel, err := strconv.Atoi(flagValue)
		if err != nil || logLevel <= 0 || logLevel > 127 {
			return fmt.Errorf("invalid log level \"%s\"", flagValue)
		}

		// zap counts verbosity downwards from debug (-1)
		lfv.onLevelAvailable(zapcore.Level(int8(-logLevel)))
	} else {
		lfv.onLevelAvailable(level)
	}

	lfv.value = flagValue
	return nil
}

func (lfv *levelFlagValue) String() string {
	return lfv.value
}

func (lfv *levelFlagValue) Type() string {
	return "level"
}

var _ pflag.Value = (*levelFlagValue)(nil)
