package log

// nullLogger discards everything logged through it: assemble's
// default, so a caller that never passes WithLogger pays nothing.
type nullLogger struct{}

func (n nullLogger) Fatal(str string) {
}

func (n nullLogger) Infof(format string, args ...interface{}) {
}

func (n nullLogger) Errorf(format string, args ...interface{}) {
}

func (n nullLogger) Debugf(format string, args ...interface{}) {
}

// NewNullLogger returns a Logger whose calls are all no-ops.
func NewNullLogger() Logger {
	return &nullLogger{}
}
