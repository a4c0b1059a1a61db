package i

// Logger is the minimal logging surface services write through.
type Logger interface {
	Info(string)
	Error(string)
	Debug(string)
}
