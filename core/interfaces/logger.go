package interfaces

// Logger is the structured logging contract used throughout the application.
//
//	logger.Info("Feed committed", map[string]interface{}{
//		"index":   1,
//		"entries": 42,
//	})
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
