package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/app"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/metrics"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/sfx"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/systems"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/term"
)

const windowTitle = "Skeleton Builder"

// sfxVolume 音效线性音量
const sfxVolume = 0.8

// openStore 打开最佳用时存储，测试中替换为内存存储
var openStore = game.OpenBestTimeStore

// cliOptions 全局命令行参数和加载后的配置
type cliOptions struct {
	configPath string
	verbose    bool
	logFile    string

	cfg *config.AppConfig
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "skeleton-builder",
		Short:         "Drag the bones onto their outlines to build the skeleton",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logging.Setup(cfg.LogLevel, opts.verbose, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (or set "+config.EnvConfigPath+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	play := newPlayCmd(opts)
	root.RunE = play.RunE
	root.AddCommand(play)
	root.AddCommand(newTermCmd(opts))
	root.AddCommand(newBestTimeCmd(opts))
	return root
}

func newPlayCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt := newRuntime(ctx, opts.cfg)
			defer rt.Close()

			a, err := app.NewApp(app.Options{
				Config:    *opts.cfg,
				Store:     rt.store,
				Listeners: rt.listeners,
				Context:   ctx,
			})
			if err != nil {
				return err
			}
			defer a.Shutdown()

			ebiten.SetWindowSize(opts.cfg.WindowWidth, opts.cfg.WindowHeight)
			ebiten.SetWindowTitle(windowTitle)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(a); err != nil {
				return fmt.Errorf("game loop: %w", err)
			}
			return nil
		},
	}
}

func newTermCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal (mouse required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 日志会破坏终端画面，只写文件或丢弃
			var logOut io.Writer = io.Discard
			if opts.logFile != "" {
				f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logging.Setup(opts.cfg.LogLevel, opts.verbose, logOut)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt := newRuntime(ctx, opts.cfg)
			defer rt.Close()

			screen, err := term.NewScreen()
			if err != nil {
				return err
			}
			t, err := term.New(screen, term.Options{
				Store:           rt.store,
				Listeners:       rt.listeners,
				RefreshInterval: opts.cfg.RefreshInterval(),
				DragDeadZone:    opts.cfg.DragDeadZone,
			})
			if err != nil {
				screen.Fini()
				return err
			}
			return t.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the terminal is in use")
	return cmd
}

func newBestTimeCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best-time",
		Short: "Show or clear the recorded best time",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the best time",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts.cfg.AppName)
			if err != nil {
				return err
			}
			ms, ok, err := store.Load()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No best time recorded yet")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Best time: %s (%d ms)\n", game.FormatTime(ms), ms)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the recorded best time",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts.cfg.AppName)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Best time cleared")
			return nil
		},
	})
	return cmd
}

// runtime 两个前端共用的外围设施：存储、音效、指标
type runtime struct {
	store     *game.BestTimeStore
	player    *sfx.Player
	listeners []systems.EventListener
	cancel    context.CancelFunc
	metrics   chan struct{}
}

func newRuntime(ctx context.Context, cfg *config.AppConfig) *runtime {
	logger := logging.For("Main")
	rt := &runtime{}

	store, err := openStore(cfg.AppName)
	if err != nil {
		logger.Warn().Err(err).Msg("best time will not be persisted")
	}
	rt.store = store

	if cfg.Sound {
		p := sfx.NewPlayer(sfxVolume)
		if err := p.Init(); err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			rt.player = p
			rt.listeners = append(rt.listeners, p)
		}
	}

	if cfg.MetricsAddr != "" {
		m := metrics.NewManager(metrics.WithNamespace(cfg.MetricsNamespace))
		rt.listeners = append(rt.listeners, m)

		ctx, cancel := context.WithCancel(ctx)
		rt.cancel = cancel
		rt.metrics = make(chan struct{})
		go func() {
			defer close(rt.metrics)
			if err := metrics.Serve(ctx, cfg.MetricsAddr, m); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}
	return rt
}

// Close 停止指标服务和音效
func (rt *runtime) Close() {
	if rt.cancel != nil {
		rt.cancel()
		<-rt.metrics
	}
	if rt.player != nil {
		rt.player.Close()
	}
}
