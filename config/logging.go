package config

import (
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging sets up logrus for the whole process: colored console
// output plus an optional rotating log file.
func ConfigureLogging(cfg *Config) error {
	log.SetLevel(cfg.GetLogLevel())
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: false})
	log.SetOutput(os.Stdout)

	if cfg.LogFilePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), os.ModePerm); err != nil {
		return err
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	log.AddHook(lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: rotating,
		log.FatalLevel: rotating,
		log.ErrorLevel: rotating,
		log.WarnLevel:  rotating,
		log.InfoLevel:  rotating,
		log.DebugLevel: rotating,
		log.TraceLevel: rotating,
	}, fileFmt))

	return nil
}
