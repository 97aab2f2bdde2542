package interfaces

// INotifier is the user-facing notification channel. Workflows report every
// outcome here; nothing is thrown past them as a fatal error.
type INotifier interface {
	Info(message string)
	Success(message string)
	Error(message string)
}
