package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"fds-renderer/internal/batch"
	"fds-renderer/internal/config"
	"fds-renderer/internal/present"
)

var showFlags config.Flags

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the animation live in an SDL2 window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(showFlags)
		if err != nil {
			return err
		}
		bc, err := buildBatch(cfg)
		if err != nil {
			return err
		}
		// The window texture matches the framebuffer one-to-one, so mirror
		// the framebuffer's rounding and skip supersampling.
		bc.Supersample = 1
		bc.Width = (bc.Width + 7) &^ 7
		bc.Height = (bc.Height + 7) &^ 7

		win, err := present.NewWindow("fdsrender", bc.Width, bc.Height)
		if err != nil {
			return err
		}
		defer win.Close()

		slog.Info("showing", "size", cfg.Width, "kernel", cfg.Kernel)

		frame := 0
		start := time.Now()
		for !win.ShouldClose() {
			fb := batch.RenderFrame(bc, frame%bc.Frames)
			if err := win.Present(fb); err != nil {
				return err
			}
			frame++
			if frame%bc.Frames == 0 {
				elapsed := time.Since(start).Seconds()
				slog.Debug("loop", "fps", float64(frame)/elapsed)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showFlags.Width, "width", 0, "Viewport width (default 640)")
	showCmd.Flags().IntVar(&showFlags.Height, "height", 0, "Viewport height (default 480)")
	showCmd.Flags().StringVar(&showFlags.Kernel, "kernel", "", "Pixel kernel: exact or approx")
	rootCmd.AddCommand(showCmd)
}
