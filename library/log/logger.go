// Package log is a logging package that provides functions to log messages.
package log

import (
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
)

// Logger is the shared logger of explain.
//
// It writes to stderr, stdout carries command output and MCP frames.
var Logger logSDK.Logger

func init() {
	var err error
	if Logger, err = logSDK.New(
		logSDK.WithName("explain"),
		logSDK.WithEncoding(logSDK.EncodingConsole),
		logSDK.WithLevel(logSDK.LevelInfo),
		logSDK.WithOutputPaths([]string{"stderr"}),
		logSDK.WithErrorOutputPaths([]string{"stderr"}),
	); err != nil {
		logSDK.Shared.Panic("new logger", zap.Error(err))
	}
}
