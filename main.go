// bmpedit reads 24-bit uncompressed bitmaps, applies simple pixel transforms
// and writes them back out.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/config"
	"github.com/anas-shakeel/bmpedit/internal/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := config.FromEnv()

	root := &cobra.Command{
		Use:          "bmpedit",
		Short:        "Edit 24-bit uncompressed BMP images",
		Long:         "Without a subcommand bmpedit starts an interactive session that asks for a file, applies commands to it and writes the result.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings.Normalize()
			if err := settings.Validate(); err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: settings.Level()})))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
				Logger:    slog.Default(),
				OutputDir: settings.OutputDir,
				Preview:   previewEnabled(settings, cmd.OutOrStdout()),
			})
			return s.Run()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level: debug, info, warn or error (env BMPEDIT_LOG_LEVEL)")
	flags.StringVar(&settings.OutputDir, "output-dir", settings.OutputDir, "directory for relative output names (env BMPEDIT_OUTPUT_DIR)")
	flags.StringVar(&settings.Preview, "preview", settings.Preview, "terminal color preview: auto, always or never (env BMPEDIT_PREVIEW)")

	root.AddCommand(newInfoCmd(), newApplyCmd(&settings), newPreviewCmd(&settings))
	return root
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header metadata of a bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := bmp.ReadBitmap(args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), bmp.Describe(image.BFHeader, image.BIHeader))
			return err
		},
	}
}

func newApplyCmd(settings *config.Settings) *cobra.Command {
	var ops []string

	cmd := &cobra.Command{
		Use:   "apply IN OUT",
		Short: "Apply transforms to IN and write the result to OUT",
		Example: "  bmpedit apply photo.bmp flipped --op vertical_flip --op horiz_flip\n" +
			"  bmpedit apply photo.bmp gray.bmp --op grayscale",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := bmp.ReadBitmap(args[0])
			if err != nil {
				return err
			}

			for _, op := range ops {
				msg, err := shell.ApplyCommand(image.Grid, op)
				if err != nil {
					return fmt.Errorf("%w (known: %v)", err, shell.TransformNames())
				}
				slog.Debug(msg, "command", op)
			}

			out := shell.OutputName(settings.OutputDir, args[1])
			if err := bmp.Save(out, image.Grid); err != nil {
				return err
			}
			slog.Info("bitmap written", "path", out, "commands", len(ops))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ops, "op", nil, fmt.Sprintf("transform to apply, repeatable, in order (%v)", shell.TransformNames()))
	return cmd
}

func newPreviewCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw a bitmap in the terminal with colored blocks (small images only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Preview == config.PreviewNever {
				return fmt.Errorf("preview is disabled")
			}
			if !previewEnabled(*settings, cmd.OutOrStdout()) {
				slog.Warn("stdout is not a terminal, printing escape sequences anyway")
			}
			image, err := bmp.ReadBitmap(args[0])
			if err != nil {
				return err
			}
			return bmp.PrintBitmap(cmd.OutOrStdout(), image.Grid, image.BIHeader.TopDown())
		},
	}
}

// previewEnabled resolves the "auto" mode by checking whether w is a terminal.
func previewEnabled(settings config.Settings, w io.Writer) bool {
	switch settings.Preview {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
