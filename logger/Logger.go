package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	// echo every message on stdout as well as the log file
	console bool
}

type properties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
	console     bool
}

func readLoggerProperties(configPath string) (properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(configPath)

	v.SetDefault("logFilename", "padel.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return properties{}, fmt.Errorf("read logger config: %w", err)
		}
	}

	return properties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
		console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init configures logrus from logger.properties found in configPath. A
// missing file falls back to the defaults.
func (l *Logger) Init(configPath string) error {
	p, err := readLoggerProperties(configPath)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    p.maxSize,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   p.compress,
	}

	l.Configure(loggerConfig, p.level, p.console)
	return nil
}

func (l *Logger) Configure(out io.Writer, level string, console bool) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(parseLevel(level))
	l.console = console
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	logrus.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Fprintln(os.Stdout, prefix, message)
	}
}
