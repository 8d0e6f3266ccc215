package logger

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全域logger，Init之前輸出會被丟棄
var Log = New()

type Logger struct {
	entry  *logrus.Logger
	rotate *lumberjack.Logger
}

type loggerProperties struct {
	filename   string
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
	level      string
}

func New() *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(io.Discard)
	return &Logger{entry: l}
}

func readLoggerProperties(fs afero.Fs, dir string) (loggerProperties, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pingpong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return loggerProperties{}, fmt.Errorf("read logger properties: %w", err)
	}

	filename := cast.ToString(v.Get("logFilename"))
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(dir, filename)
	}

	return loggerProperties{
		filename:   filename,
		maxSize:    cast.ToInt(v.Get("maxSize")),
		maxBackups: cast.ToInt(v.Get("maxBackups")),
		maxAge:     cast.ToInt(v.Get("maxAge")),
		compress:   cast.ToBool(v.Get("compress")),
		level:      cast.ToString(v.Get("level")),
	}, nil
}

// Init 讀取dir底下的logger.properties，之後的log寫到輪替檔案
func (l *Logger) Init(fs afero.Fs, dir string) error {
	props, err := readLoggerProperties(fs, dir)
	if err != nil {
		return err
	}

	l.rotate = &lumberjack.Logger{
		Filename:   props.filename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}
	l.entry.SetOutput(l.rotate)
	l.entry.SetLevel(parseLevel(props.level))
	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Debug":
		return logrus.DebugLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.InfoLevel
	}
}

// SetOutput 換掉輸出目的地，主要給測試用
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.SetOutput(w)
}

func (l *Logger) SetLevel(level string) {
	l.entry.SetLevel(parseLevel(level))
}

func (l *Logger) Close() error {
	if l.rotate == nil {
		return nil
	}
	return l.rotate.Close()
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}
