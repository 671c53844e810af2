package bnb

import (
	"log/slog"
	"time"
)

const levelInfo = slog.LevelInfo

// slogLevel picks the summary level: debug for a finished search, warn otherwise.
func slogLevel(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

func attrSize(n int) slog.Attr { return slog.Int("size", n) }

func attrBound(n int) slog.Attr { return slog.Int("root_bound", n) }

func attrComplete(ok bool) slog.Attr { return slog.Bool("complete", ok) }

func attrNodes(n int64) slog.Attr { return slog.Int64("nodes", n) }

func attrElapsed(d time.Duration) slog.Attr { return slog.Duration("elapsed", d) }
