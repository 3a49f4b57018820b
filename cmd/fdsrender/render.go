package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fds-renderer/internal/batch"
	"fds-renderer/internal/config"
)

var renderFlags config.Flags

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the animation offline to WebP frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(renderFlags)
		if err != nil {
			return err
		}
		bc, err := buildBatch(cfg)
		if err != nil {
			return err
		}

		slog.Info("rendering", "frames", bc.Frames, "size", fmt.Sprintf("%dx%d", bc.Width, bc.Height), "workers", bc.Workers, "output", bc.OutputDir)

		start := time.Now()
		results := batch.Run(bc)
		elapsed := time.Since(start)

		success, failed := 0, 0
		for _, r := range results {
			if r.Success {
				success++
			} else {
				failed++
				slog.Error("frame failed", "frame", r.Frame, "error", r.Error)
			}
		}
		slog.Info("done", "rendered", success, "failed", failed, "elapsed", elapsed.Round(time.Millisecond))

		if err := batch.WriteManifest(bc.OutputDir, bc, results); err != nil {
			slog.Warn("manifest write failed", "error", err)
		}

		if failed > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderFlags.Width, "width", 0, "Viewport width (default 640)")
	renderCmd.Flags().IntVar(&renderFlags.Height, "height", 0, "Viewport height (default 480)")
	renderCmd.Flags().IntVar(&renderFlags.Frames, "frames", 0, "Frame count (default 120)")
	renderCmd.Flags().StringVar(&renderFlags.OutputDir, "output", "", "Output directory (default frames)")
	renderCmd.Flags().StringVar(&renderFlags.Kernel, "kernel", "", "Pixel kernel: exact or approx")
	renderCmd.Flags().IntVar(&renderFlags.Workers, "workers", 0, "Worker goroutines (default NumCPU)")
	rootCmd.AddCommand(renderCmd)
}
