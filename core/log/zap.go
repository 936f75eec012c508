// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ZapConfig configures the zap backed Handler.
type ZapConfig struct {
	// Level is the lowest severity written.
	Level Severity
	// Format is "console" or "json".
	Format string
	// File, if set, sends output to a rotated file instead of stderr.
	File string
	// MaxSizeMB, MaxBackups and MaxAgeDays control rotation of File.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

func zapLevel(s Severity) zapcore.Level {
	switch {
	case s <= Debug:
		return zapcore.DebugLevel
	case s == Info:
		return zapcore.InfoLevel
	case s == Warning:
		return zapcore.WarnLevel
	case s == Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// Zap returns a Handler that writes messages through a zap logger built from
// cfg. Closing the handler flushes the logger.
func Zap(cfg ZapConfig) Handler {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	var ws zapcore.WriteSyncer
	if cfg.File != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(cfg.MaxSizeMB, 10),
			MaxBackups: max(cfg.MaxBackups, 1),
			MaxAge:     max(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress,
		})
	} else {
		ws = zapcore.Lock(os.Stderr)
	}
	return ZapCore(zapcore.NewCore(encoder, ws, zapLevel(cfg.Level)))
}

// ZapCore returns a Handler that writes messages to core.
func ZapCore(core zapcore.Core) Handler {
	l := zap.New(core)
	return handler{
		handle: func(m *Message) {
			ce := l.Check(zapLevel(m.Severity), m.Text)
			if ce == nil {
				return
			}
			ce.Time = m.Time
			fields := make([]zap.Field, 0, len(m.Values)+2)
			if m.Tag != "" {
				fields = append(fields, zap.String("tag", m.Tag))
			}
			if len(m.Trace) > 0 {
				fields = append(fields, zap.Strings("trace", m.Trace))
			}
			for _, v := range m.Values {
				fields = append(fields, zap.Any(v.Name, v.Value))
			}
			ce.Write(fields...)
		},
		close: func() { l.Sync() },
	}
}
