package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"motionmontage/internal/config"
	"motionmontage/internal/frame"
	"motionmontage/internal/montage"
	"motionmontage/internal/video"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("motionmontage failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "motionmontage [flags] <source1>[:start_seconds] <source2>[:start_seconds] <output_path>",
		Short: "Merge two recordings of the same event, keeping the angle with more motion",
		Long: `motionmontage reads two time-aligned videos of the same event and writes a
single video that, frame by frame, keeps whichever source shows more motion.

A source may be followed by ":seconds" to start reading at that offset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(args, opts)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				_ = cmd.Usage()
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln("Error:", err)
		_ = c.Usage()
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.Verbose, "verbose", false, "log per-frame scores and source metadata")
	flags.IntVarP(&opts.Width, "width", "w", opts.Width, "output width")
	flags.IntVarP(&opts.Height, "height", "h", opts.Height, "output height")
	flags.StringVarP(&opts.Codec, "codec", "c", opts.Codec, "output fourcc, exactly 4 characters")
	flags.IntVar(&opts.Window, "window", opts.Window, "motion smoothing window, in frames")
	flags.BoolVar(&opts.Preview, "preview", false, "show the output in a window, any key stops")
	flags.BoolVar(&opts.Progress, "progress", false, "show a progress bar")
	flags.StringVar(&opts.Report, "report", "", "write a JSON run report to this path")

	return cmd
}

func setupLogger(cfg config.Config) *logrus.Entry {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logrus.NewEntry(logger)
}

func run(ctx context.Context, cfg config.Config) error {
	log := setupLogger(cfg)

	var streams [2]*video.Stream
	for i, src := range cfg.Sources {
		stream, err := video.OpenStream(src.Path)
		if err != nil {
			return err
		}
		defer stream.Close()

		stream.Seek(src.Start)
		md := stream.Metadata()
		log.WithFields(logrus.Fields{
			"source": src.String(),
			"width":  md.Width,
			"height": md.Height,
			"codec":  md.FourCC,
			"frames": md.FrameCount,
			"fps":    md.FPS,
		}).Info("source opened")
		streams[i] = stream
	}

	fps := streams[0].Fps()
	if fps <= 0 {
		return errors.New("unable to get video frame rate")
	}

	writer, err := video.OpenWriter(cfg.Output, cfg.Codec, fps, cfg.Size)
	if err != nil {
		return err
	}
	defer writer.Close()

	opts := montage.Options{
		Window: cfg.Window,
		Size:   frame.NormalizedSize,
		Logger: log,
	}

	if cfg.Preview {
		preview := video.NewPreview("motionmontage", cfg.Size)
		defer preview.Close()
		writer.Mirror(preview)
		opts.Stop = preview.Stopped
	}

	if cfg.Progress {
		total := max(streams[0].Remaining(), streams[1].Remaining())
		if total <= 0 {
			total = -1
		}
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Merging..."),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		defer bar.Finish()
		opts.OnTick = func(montage.Tick) {
			_ = bar.Add(1)
		}
	}

	driver, err := montage.NewDriver[*frame.Frame](streams[0], streams[1], writer, opts)
	if err != nil {
		return err
	}

	report, err := driver.Run(ctx)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"ticks":    report.Ticks,
		"emitted":  report.Emitted,
		"switches": len(report.Switches),
		"duration": report.Duration,
	}).Info("montage written to " + cfg.Output)

	if cfg.Report != "" {
		if err := report.WriteFile(cfg.Report); err != nil {
			return err
		}
	}
	return nil
}
