package simpleotp

import "github.com/goliatone/go-logger/glog"

// Logger is the structured logger used across the package.
type Logger = glog.Logger

// LoggerProvider hands out named loggers.
type LoggerProvider = glog.LoggerProvider

const loggerName = "simpleotp"

// ResolveLogger picks the logger for name. A provider that knows the name
// wins, then the explicit logger, then the package default. The returned
// provider always resolves to the returned logger.
func ResolveLogger(name string, provider LoggerProvider, logger Logger) (LoggerProvider, Logger) {
	if provider != nil {
		if scoped := provider.GetLogger(name); scoped != nil {
			return provider, scoped
		}
	}

	if logger == nil {
		logger = defaultLogger()
	}

	return glog.ProviderFromLogger(logger), logger
}

func defaultLogger() Logger {
	return glog.NewLogger(
		glog.WithName(loggerName),
		glog.WithAddSource(false),
	).GetLogger(loggerName)
}
