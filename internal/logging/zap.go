// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the command-line host.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevLogger returns a human-readable console logger at Debug level.
func NewDevLogger() (*zap.Logger, error) {
	return build(zap.NewDevelopmentConfig())
}

// NewProdLogger returns a JSON logger at Info level.
func NewProdLogger() (*zap.Logger, error) {
	return build(zap.NewProductionConfig())
}

// New picks the dev or prod logger.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return NewDevLogger()
	}

	return NewProdLogger()
}

func build(cfg zap.Config) (*zap.Logger, error) {
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	// stdout carries the coefficient table
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
