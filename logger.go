package pairmap

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/fatih/color"
	"github.com/fujiwara/logutils"
)

var LogLevels = []logutils.LogLevel{"debug", "info", "notice", "warn", "error"}

// LoggerSetup routes the standard logger through a level filter writing to w.
// The returned func restores the previous output.
func LoggerSetup(w io.Writer, minLevel string) (func(), error) {
	if minLevel == "" {
		minLevel = "info"
	}
	if !slices.Contains(LogLevels, logutils.LogLevel(minLevel)) {
		return nil, fmt.Errorf("unknown log level: %s", minLevel)
	}
	beforeOutput := log.Writer()
	beforeFlags := log.Flags()
	cleanup := func() {
		log.SetOutput(beforeOutput)
		log.SetFlags(beforeFlags)
	}
	filter := &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: logutils.LogLevel(minLevel),
		ModifierFuncs: []logutils.ModifierFunc{
			logutils.Color(color.FgHiBlack),
			logutils.Color(color.FgWhite),
			logutils.Color(color.FgHiBlue),
			logutils.Color(color.FgYellow),
			logutils.Color(color.FgRed, color.Bold),
		},
		Writer: w,
	}
	if minLevel != "debug" {
		log.SetOutput(filter)
		return cleanup, nil
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(
		writerFunc(func(b []byte) (int, error) {
			// align the level prefix after the variable length file:line header
			x := bytes.IndexByte(b, '[')
			if x > 0 {
				pos := x - 1
				n := ((pos/4)+1)*4 - pos - 1
				padded := make([]byte, 0, len(b)+n)
				padded = append(padded, b[:pos]...)
				padded = append(padded, bytes.Repeat([]byte{' '}, n)...)
				padded = append(padded, b[pos:]...)
				b = padded
			}
			return filter.Write(b)
		}),
	)
	log.Println("[debug] Setting log level to", minLevel)
	return cleanup, nil
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(bs []byte) (int, error) {
	return f(bs)
}
