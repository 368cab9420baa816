// Package logger is the public API of rtlog. Most users only need to
// import this package.
//
// The package maintains a process-wide default logger configured by Init:
//
//	logger.Init(logger.DebugFilter, true, false)
//	logger.Info("net", "connected to %s:%d", host, port)
//
// Log calls made before Init are silently dropped: the default instance
// starts with an Off threshold and no sinks. Calling Init again is an
// idempotent reset that replaces the threshold and the sink set. A valid
// level name in the RTLOG_LEVEL environment variable overrides the level
// passed to Init.
//
// Every call funnels through Log: the threshold check runs before any
// formatting or argument expansion, so a filtered-out record costs one
// atomic load and one comparison, from any goroutine, without blocking.
// Admitted records are formatted into a fixed 8 KiB budget and fanned out
// to the registered sinks in order; sink failures never reach the caller.
//
// For injected (non-global) use, build an instance:
//
//	log := logger.NewBuilder().
//	    WithMaxLevel(logger.TraceFilter).
//	    WithSinks(sink.NewConsole(sink.ConsoleConfig{})).
//	    Build()
//
// Nothing in this facility returns an error to the application and no log
// call can crash it; the worst observable failure is missing or truncated
// output.
package logger
