package pipeline

import "errors"

// ErrInvalidInput is the sentinel InputError wraps, so callers can use
// errors.Is(err, pipeline.ErrInvalidInput) without depending on the
// concrete error type.
var ErrInvalidInput = errors.New("normy: input is not valid UTF-8")

// ErrInvalidConfiguration is the sentinel ConfigError wraps.
var ErrInvalidConfiguration = errors.New("normy: invalid pipeline configuration")

// InputError reports spec's InvalidInput condition: the string handed to
// Normalize was not valid UTF-8.
type InputError struct {
	Input string
}

func (e *InputError) Error() string {
	return "normy: input is not valid UTF-8"
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// ConfigError reports spec's InvalidConfiguration condition: a build-time
// conflict between the chosen stages and the selected language's policy
// table, surfaced from Build rather than from Normalize.
type ConfigError struct {
	Stage  string
	Lang   string
	Reason string
}

func (e *ConfigError) Error() string {
	return "normy: invalid configuration for stage " + e.Stage + " with language " + e.Lang + ": " + e.Reason
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }
