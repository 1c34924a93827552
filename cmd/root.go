/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nvdriver/app"
	"nvdriver/driver"
	"nvdriver/sysinfo"
)

var (
	logLevel string
	noPause  bool
	endpoint string
	lang     string
)

var rootCmd = &cobra.Command{
	Use:          "nvdriver",
	Short:        "Find the latest NVIDIA driver download link for this machine",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		logger := setupLogger()
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		// the first interrupt cancels ctx, any further one kills the process
		context.AfterFunc(ctx, cancel)

		q := driver.DefaultQuery()
		q.Locale = lang
		fetcher := driver.NewFetcher(driver.WithEndpoint(endpoint), driver.WithQuery(q))

		app.New(sysinfo.Inspector(), fetcher, cmd.OutOrStdout(), cmd.InOrStdin(), !noPause).Run(ctx)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "exit without waiting for Enter")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", driver.DefaultEndpoint, "driver lookup url")
	rootCmd.Flags().StringVar(&lang, "lang", driver.DefaultQuery().Locale, "driver lookup locale")
}

func setupLogger() *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}
