package broker

import (
	"context"
	"fmt"
	"log/slog"
)

// printfLogger adapts slog to kafka-go's printf-style logger interface.
type printfLogger struct {
	l     *slog.Logger
	level slog.Level
}

func (p *printfLogger) Printf(format string, v ...any) {
	p.l.Log(context.Background(), p.level, fmt.Sprintf(format, v...))
}
