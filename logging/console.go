package logging

import (
	"fmt"
	"strings"
)

// Level orders log severities.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DBG", "INF", "WRN", "ERR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "???"
	}
	return levelNames[l]
}

// Console writes one line per message with println, e.g.
//
//	INF measured ohms=9819 e24=9100
type Console struct {
	Min   Level
	print func(string)
}

// NewConsole creates a console logger that drops messages below min.
func NewConsole(min Level) *Console {
	return &Console{Min: min, print: func(s string) { println(s) }}
}

func (c *Console) Debug(msg string, fields ...Field) { c.log(LevelDebug, msg, fields) }
func (c *Console) Info(msg string, fields ...Field)  { c.log(LevelInfo, msg, fields) }
func (c *Console) Warn(msg string, fields ...Field)  { c.log(LevelWarn, msg, fields) }
func (c *Console) Error(msg string, fields ...Field) { c.log(LevelError, msg, fields) }

func (c *Console) log(l Level, msg string, fields []Field) {
	if l < c.Min {
		return
	}
	c.print(Format(l, msg, fields...))
}

// Format renders a message the way Console prints it.
func Format(l Level, msg string, fields ...Field) string {
	var sb strings.Builder
	sb.WriteString(l.String())
	sb.WriteByte(' ')
	sb.WriteString(msg)
	for _, f := range fields {
		sb.WriteByte(' ')
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		switch v := f.Value.(type) {
		case string:
			sb.WriteString(v)
		case float64:
			sb.WriteString(fmt.Sprintf("%.4g", v))
		case error:
			sb.WriteString(v.Error())
		case fmt.Stringer:
			sb.WriteString(v.String())
		default:
			sb.WriteString(fmt.Sprint(v))
		}
	}
	return sb.String()
}
