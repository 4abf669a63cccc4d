package fault

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

// Frame is one resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Stack holds the call sites recorded when a Record was constructed, most
// recent first.
type Stack []Frame

// String renders one frame per line, indented for embedding in diagnostic
// text.
func (s Stack) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, fr := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(fr.Function)
		b.WriteByte(' ')
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
	}
	return b.String()
}

// captureStack records up to maxStackDepth frames. skip counts frames above
// the caller of captureStack itself; CallersFrames resolution keeps inlined
// calls accurate.
func captureStack(skip int) Stack {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}
