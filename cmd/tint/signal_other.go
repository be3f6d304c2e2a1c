//go:build !unix

package tint

// IgnoreBrokenPipeSignal is a no-op where SIGPIPE does not exist
func IgnoreBrokenPipeSignal() {}
