package tsconsole

import "github.com/ar4ie13/tsconsole/internal/stdconsole"

//go:generate mockgen -destination=internal/mocks/operations_mock.go -package=mocks . Operations

// Operations is the console surface decorated by Console. Every method
// returns the error of the write it performs, if any.
type Operations interface {
	Assert(cond bool, data ...any) error
	Clear() error
	Count(label string) error
	CountReset(label string) error
	Debug(data ...any) error
	Dir(obj any) error
	DirXML(data ...any) error
	Error(data ...any) error
	Group(label ...any) error
	GroupCollapsed(label ...any) error
	GroupEnd() error
	Info(data ...any) error
	Log(data ...any) error
	Table(data any, columns ...string) error
	Time(label string) error
	TimeEnd(label string) error
	TimeLog(label string, data ...any) error
	Trace(data ...any) error
	Warn(data ...any) error
}

var (
	_ Operations = (*Console)(nil)
	_ Operations = (*stdconsole.Console)(nil)
)
