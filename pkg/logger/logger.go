// Package logger 基于log/slog构建结构化日志
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options 日志配置
type Options struct {
	Level  string // debug | info | warn | error
	Format string // text | json
	Output string // stdout | stderr | /path/to/file
}

// New 根据配置创建Logger
// 返回的close用于关闭日志文件（输出到stdout/stderr时为空操作）
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w, closeFn, err := openOutput(opts.Output)
	if err != nil {
		return nil, nil, err
	}

	return NewWithWriter(w, level, opts.Format), closeFn, nil
}

// NewWithWriter 使用指定Writer创建Logger
func NewWithWriter(w io.Writer, level slog.Level, format string) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// Discard 丢弃所有输出的Logger（测试用）
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel 日志级别字符串 → slog.Level，空字符串为info
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("未知的日志级别: %s", s)
	}
}

func openOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch output {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, f.Close, nil
}
