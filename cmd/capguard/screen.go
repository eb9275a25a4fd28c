package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rpdg/capguard/screen"
)

var (
	outputFlag     string
	indexFlag      int
	formatFlag     string
	outFlag        string
	analysisFlag   string
	normalizedFlag bool
	stretchFlag    bool
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List attached monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := screens().Monitors()
		if err != nil {
			return err
		}
		return writeMonitors(cmd.OutOrStdout(), outputFlag, monitors)
	},
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a monitor to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		index := cfg.MonitorIndex
		if cmd.Flags().Changed("index") {
			index = indexFlag
		}
		name := cfg.ImageFormat
		if cmd.Flags().Changed("format") {
			name = formatFlag
		}
		format, err := screen.ParseFormat(name)
		if err != nil {
			return err
		}

		buf, err := screens().CaptureMonitor(index)
		if err != nil {
			return err
		}

		if outFlag == "-" {
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := screen.Encode(w, buf, format); err != nil {
				return err
			}
			return w.Flush()
		}

		path := outFlag
		if path == "" {
			path = filepath.Join(cfg.OutputDir,
				fmt.Sprintf("monitor%d-%s%s", index, time.Now().Format("20060102-150405"), format.Ext()))
		}
		if err := writeImage(path, buf, format); err != nil {
			return err
		}
		logger.Info("capture written",
			zap.String("path", path),
			zap.Int("width", buf.Width),
			zap.Int("height", buf.Height))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var mapCmd = &cobra.Command{
	Use:   "map X,Y",
	Short: "Map a point in an analysed image back to screen coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parsePair(args[0], ",")
		if err != nil {
			return fmt.Errorf("point: %w", err)
		}
		opts := screen.MapOptions{Normalized: normalizedFlag, Stretch: stretchFlag}
		if analysisFlag != "" {
			w, h, err := parsePair(analysisFlag, "x")
			if err != nil {
				return fmt.Errorf("analysis: %w", err)
			}
			opts.Analysis = screen.Size{Width: int(w), Height: int(h)}
		}

		monitors, err := screens().Monitors()
		if err != nil {
			return err
		}
		if len(monitors) == 0 {
			return screen.ErrNoMonitors
		}
		m := monitors[0]
		if indexFlag >= 0 && indexFlag < len(monitors) {
			m = monitors[indexFlag]
		}

		mapper, err := screen.NewMapper(
			screen.Size{Width: m.Width, Height: m.Height},
			screen.Point{X: int32(m.OriginX), Y: int32(m.OriginY)},
			opts)
		if err != nil {
			return err
		}
		p := mapper.ToScreenPoint(x, y)
		fmt.Fprintf(cmd.OutOrStdout(), "%d,%d\n", p.X, p.Y)
		return nil
	},
}

func init() {
	monitorsCmd.Flags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json or yaml")

	captureCmd.Flags().IntVar(&indexFlag, "index", 0, "monitor index (default from config)")
	captureCmd.Flags().StringVar(&formatFlag, "format", "", "image format: png, bmp or raw (default from config)")
	captureCmd.Flags().StringVar(&outFlag, "out", "", "output file, - for stdout (default is a timestamped file in output_dir)")

	mapCmd.Flags().IntVar(&indexFlag, "index", 0, "monitor index")
	mapCmd.Flags().StringVar(&analysisFlag, "analysis", "", "analysed image size as WxH (default is the monitor size)")
	mapCmd.Flags().BoolVar(&normalizedFlag, "normalized", false, "coordinates are fractions of the analysed image")
	mapCmd.Flags().BoolVar(&stretchFlag, "stretch", false, "analysed image was stretched, not letterboxed")
}

func screens() *screen.Screen {
	return screen.Default(screen.WithLogger(logger))
}

func writeMonitors(w io.Writer, output string, monitors []screen.Monitor) error {
	switch strings.ToLower(output) {
	case "json":
		return printJSONTo(w, monitors)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(monitors); err != nil {
			return err
		}
		return enc.Close()
	case "", "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tNAME\tORIGIN\tSIZE\tDPI\tPRIMARY")
		for _, m := range monitors {
			dpi := "-"
			if m.DPI != 0 {
				dpi = strconv.FormatUint(uint64(m.DPI), 10)
			}
			fmt.Fprintf(tw, "%d\t%s\t%d,%d\t%dx%d\t%s\t%t\n", m.Index, m.Name, m.OriginX, m.OriginY, m.Width, m.Height, dpi, m.Primary)
		}
		if vb, err := screen.VirtualBounds(); err == nil {
			fmt.Fprintf(tw, "\nvirtual screen: %d,%d %dx%d\n", vb.Left, vb.Top, vb.Width(), vb.Height())
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func writeImage(path string, buf *screen.PixelBuffer, format screen.Format) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := screen.Encode(w, buf, format); err != nil {
		return err
	}
	return w.Flush()
}

func parsePair(s, sep string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected two values separated by %q, got %q", sep, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
