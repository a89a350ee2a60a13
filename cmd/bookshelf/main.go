// Bookshelf 书目工作台
//
// @title        Bookshelf API
// @version      1.0
// @description  书目工作台：图书集合、图书表单草稿与版次草稿
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/tui"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:           "bookshelf",
		Short:         "Bookstore inventory workbench",
		Long:          "Bookshelf 管理书店的图书集合：通过HTTP API或终端界面新增、编辑、删除和过滤图书。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal workbench",
		RunE:  runTUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找./config/config.yaml）")
	rootCmd.AddCommand(serveCmd, tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bookshelf:", err)
		os.Exit(1)
	}
}

// runServe 启动HTTP服务
// 1. 加载配置、初始化日志、指标和链路追踪
// 2. Wire组装Gin引擎
// 3. 捕获SIGINT/SIGTERM后优雅关闭，最多等待shutdown_timeout
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log.Options())
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorURL)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Warn("关闭链路追踪失败", "error", err)
			}
		}()
		log.Info("链路追踪已启用", "collector", cfg.Tracing.CollectorURL)
	}

	engine, err := InitializeServer(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动成功",
			"addr", srv.Addr,
			"mode", cfg.Server.Mode,
			"id_strategy", cfg.Inventory.IDStrategy,
			"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP服务器启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("正在优雅关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}
	log.Info("服务已关闭")
	return nil
}

// runTUI 打开终端界面
// 日志输出到终端会破坏界面，只有配置了日志文件时才记录
func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.Discard()
	if out := cfg.Log.Output; out != "" && out != "stdout" && out != "stderr" {
		fileLog, closeLog, err := logger.New(cfg.Log.Options())
		if err != nil {
			return err
		}
		defer closeLog()
		log = fileLog
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, InitializeWorkbench(cfg, log))
}
