package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	logdsrv "github.com/philipp01105/rtlog/internal/logd"
	"github.com/philipp01105/rtlog/logger"
	"github.com/philipp01105/rtlog/sink"
)

func main() {
	var (
		configPath   string
		packetSocket string
		streamSocket string
		color        bool
		timestamps   bool
		showThread   bool
	)

	rootCmd := &cobra.Command{
		Use:   "logd",
		Short: "Log collection daemon for rtlog pipelines",
		Long: "logd receives wire-encoded log records from rtlog processes over Unix domain\n" +
			"sockets (seqpacket and length-prefixed stream) and renders them to stdout as\n" +
			"one merged log.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The daemon logs its own lifecycle to stderr so the merged
			// client log on stdout stays clean.
			logger.SetDefault(logger.NewBuilder().
				WithMaxLevel(logger.InfoFilter).
				WithSinks(sink.NewConsole(sink.ConsoleConfig{Writer: os.Stderr})).
				Build())

			cfg := logdsrv.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = logdsrv.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("packet-socket") {
				cfg.PacketSocket = packetSocket
			}
			if cmd.Flags().Changed("stream-socket") {
				cfg.StreamSocket = streamSocket
			}
			if cmd.Flags().Changed("color") {
				cfg.Output.Color = color
			}
			if cmd.Flags().Changed("timestamps") {
				cfg.Output.Timestamps = timestamps
			}
			if cmd.Flags().Changed("show-thread") {
				cfg.Output.ShowThread = showThread
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := logdsrv.NewServer(cfg, os.Stdout)
			if err := srv.Start(); err != nil {
				return errors.Wrap(err, "failed to start listeners")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Info("logd", "shutting down")
			return srv.Close()
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&packetSocket, "packet-socket", logdsrv.DefaultConfig().PacketSocket, "seqpacket listener address (empty to disable)")
	rootCmd.Flags().StringVar(&streamSocket, "stream-socket", logdsrv.DefaultConfig().StreamSocket, "stream listener address (empty to disable)")
	rootCmd.Flags().BoolVar(&color, "color", false, "force colored output")
	rootCmd.Flags().BoolVar(&timestamps, "timestamps", true, "prepend timestamps to rendered records")
	rootCmd.Flags().BoolVar(&showThread, "show-thread", true, "show tgid/tid of the emitting process")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
