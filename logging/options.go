package logging

import (
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	StdoutFile = "stdout"
)

// Options configures how loggers built by this package behave.  A nil or zero
// Options yields logfmt output on stdout filtered at the ERROR level.
type Options struct {
	// File is where log output goes.  The value "stdout" selects os.Stdout.
	// Any other nonempty value is treated as a file path with rotation
	// handled by lumberjack.
	File string `json:"file"`

	// MaxSize, MaxAge, and MaxBackups are handed to lumberjack unmodified
	// when a rolling file is in use.  They are ignored for stdout.
	MaxSize    int `json:"maxsize"`
	MaxAge     int `json:"maxage"`
	MaxBackups int `json:"maxbackups"`

	// JSON switches output from logfmt to JSON.
	JSON bool `json:"json"`

	// Level is the minimum level to emit: ERROR, WARN, INFO, or DEBUG.
	// Anything unrecognized, including the empty string, means ERROR.
	Level string `json:"level"`
}

// writer produces the io.Writer selected by File
func (o *Options) writer() io.Writer {
	if o != nil && len(o.File) > 0 && o.File != StdoutFile {
		return &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSize,
			MaxAge:     o.MaxAge,
			MaxBackups: o.MaxBackups,
		}
	}

	return log.NewSyncWriter(os.Stdout)
}

// format produces the go-kit logger constructor selected by JSON
func (o *Options) format() func(io.Writer) log.Logger {
	if o != nil && o.JSON {
		return log.NewJSONLogger
	}

	return log.NewLogfmtLogger
}

func (o *Options) level() string {
	if o != nil {
		return o.Level
	}

	return ""
}
