package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sudoku-server/internal/app"
	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var log = logrus.New()

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile := config.LogFile(); logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}

	sudoku.Log = log
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	if err := app.New(log).Start(mainCtx); err != nil {
		log.Printf("exit reason: %s\n", err)
		os.Exit(1)
	}
}
