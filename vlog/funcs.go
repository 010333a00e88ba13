package vlog

// Info logs to the INFO log of the default logger.
func Info(args ...interface{}) { Log.Info(args...) }

// Infof logs to the INFO log of the default logger.
func Infof(format string, args ...interface{}) { Log.Infof(format, args...) }

// Error logs to the ERROR and INFO logs of the default logger.
func Error(args ...interface{}) { Log.Error(args...) }

// Errorf logs to the ERROR and INFO logs of the default logger.
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }

// FlushLog flushes all pending log I/O on the default logger.
func FlushLog() { Log.FlushLog() }
