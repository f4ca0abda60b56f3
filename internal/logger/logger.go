package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is no-op until Init is called, so packages can log from tests.
var Logger = zap.NewNop()

// Init builds the process logger. With an empty file it writes JSON to stderr,
// otherwise to a lumberjack-rotated file.
func Init(file, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var ws zapcore.WriteSyncer
	if file != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	} else {
		ws = zapcore.Lock(os.Stderr)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, lvl)

	Logger = zap.New(core, zap.AddCaller())
	return nil
}

func Sync() {
	_ = Logger.Sync()
}
