package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App is attached to every entry so api and cli logs can be told apart from other services.
const App = "peer-interview"

// New builds the process logger. Debug mode lowers the level to debug and
// records stacktraces from warn upwards; otherwise stacktraces are dropped and
// json output is sampled, since the api logs every request.
func New(json bool, debug bool) (*zap.Logger, error) {
	return config(json, debug).Build()
}

func config(json bool, debug bool) zap.Config {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:          encoding,
		Level:             zap.NewAtomicLevelAt(level),
		Development:       debug,
		DisableStacktrace: !debug,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     map[string]any{"app": App},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			StacktraceKey:  "stacktrace",
			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}

	if json && !debug {
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	return cfg
}
