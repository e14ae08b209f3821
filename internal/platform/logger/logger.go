package logger

import (
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel acepta lo que entiende zapcore más "warning"; vacío o desconocido => info.
func ParseLevel(s string) zapcore.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil || s == "" {
		return zapcore.InfoLevel
	}
	return lvl
}

// Formato del encoder: "json" o consola (cualquier otro valor).
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger es la interfaz que usan services y adapters. Los campos van en un map
// para no acoplar el dominio a zap.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  zapcore.Level
	Format string
	App    string
}

// ZapLogger implementa Logger sobre *zap.Logger.
type ZapLogger struct {
	z *zap.Logger
}

func New(opts Options) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(opts.Format), FormatJSON) {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), opts.Level)
	z := zap.New(core)
	if app := strings.TrimSpace(opts.App); app != "" {
		z = z.With(zap.String("app", app))
	}
	return &ZapLogger{z: z}
}

// NewFromZap envuelve un *zap.Logger existente (tests con zaptest/observer).
func NewFromZap(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapLogger{z: z}
}

// NewNop descarta todo.
func NewNop() Logger {
	return &ZapLogger{z: zap.NewNop()}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=console|json (default console)
// - APP_NAME=petster (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: os.Getenv("LOG_FORMAT"),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *ZapLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *ZapLogger) Debug(msg string, fields map[string]any) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *ZapLogger) Info(msg string, fields map[string]any)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *ZapLogger) Warn(msg string, fields map[string]any)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *ZapLogger) Error(msg string, fields map[string]any) { l.z.Error(msg, toZapFields(fields)...) }

// Sync vacía buffers; se llama al apagar el server.
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}

func toZapFields(m map[string]any) []zap.Field {
	if len(m) == 0 {
		return nil
	}
	// Ordenar keys para salida estable (útil en tests/logs).
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := m[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, m[k]))
	}
	return out
}
