package gen

import (
	"errors"
	"flag"
	"fmt"
)

// ConfigError is a problem with the command line, environment, or the layout
// of the icons repository.
type ConfigError struct {
	Msg string
	Err error
}

// Error satisfies the error interface.
func (err *ConfigError) Error() string {
	if err.Err != nil {
		return err.Msg + ": " + err.Err.Error()
	}
	return err.Msg
}

// Unwrap returns the underlying error.
func (err *ConfigError) Unwrap() error {
	return err.Err
}

// configErrorf creates a config error.
func configErrorf(s string, v ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(s, v...)}
}

// AssetError is a source image that exists but could not be decoded.
type AssetError struct {
	Path string
	Err  error
}

// Error satisfies the error interface.
func (err *AssetError) Error() string {
	return fmt.Sprintf("failed decoding %s: %v", err.Path, err.Err)
}

// Unwrap returns the underlying error.
func (err *AssetError) Unwrap() error {
	return err.Err
}

// UsageError is an invalid command line.
type UsageError struct {
	Err error
}

// Error satisfies the error interface.
func (err *UsageError) Error() string {
	return err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *UsageError) Unwrap() error {
	return err.Err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	var uerr *UsageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &uerr):
		return 2
	}
	return 1
}
