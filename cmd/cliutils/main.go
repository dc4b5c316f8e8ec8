// Package main provides the cliutils command, a small front end for the
// color, config and input packages.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isseis/go-cli-utils/internal/color"
	"github.com/isseis/go-cli-utils/internal/config"
	"github.com/isseis/go-cli-utils/internal/input"
	"github.com/isseis/go-cli-utils/internal/logging"
	"github.com/isseis/go-cli-utils/internal/terminal"
)

var errMissingText = errors.New("no text given and standard input is empty")

var (
	verbose     bool
	noColorLogs bool
)

func main() {
	root := buildRoot()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "cliutils",
		Short:        "Terminal coloring and input helpers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&noColorLogs, "no-color-logs", false, "print log levels without ANSI escape sequences")

	root.AddCommand(
		paletteCmd(),
		paintCmd(),
		readCmd(),
		configCmd(),
	)

	return root
}

func setupLogger(w io.Writer, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler, err := logging.NewConsoleHandler(logging.ConsoleHandlerOptions{
		Level:    level,
		Writer:   w,
		UseColor: !noColorLogs,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// --- palette -----------------------------------------------------------------

func paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print every color applied to its own name",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, c := range color.Colors() {
				s := color.NewColorString(c, c.String())
				s.Paint()
				fmt.Fprintln(out, s.Colorized)
			}
			fmt.Fprintln(out, color.Reset("reset"))
		},
	}
}

// --- paint -------------------------------------------------------------------

func paintCmd() *cobra.Command {
	c := color.ColorRed
	var reset bool

	cmd := &cobra.Command{
		Use:   "paint <text...>",
		Short: "Print text in a color",
		Long: `Prints the given text wrapped in ANSI escape sequences. With no arguments
one line is read from standard input.`,
		Example: `  cliutils paint --color green done
  echo hello | cliutils paint --color cyan
  cliutils paint --reset plain text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				line, err := input.NewReader(cmd.InOrStdin()).ReadLine()
				if err != nil {
					return err
				}
				if line == "" {
					return errMissingText
				}
				text = line
			}

			s := color.NewColorString(c, text)
			if reset {
				s.Reset()
			} else {
				s.Paint()
			}
			slog.Debug("Painted text", "color", c.String(), "reset", reset, "length", len(text))

			fmt.Fprintln(cmd.OutOrStdout(), s.Colorized)
			return nil
		},
	}

	cmd.Flags().VarP(&c, "color", "c", "color to apply (red, green, blue, bold, cyan)")
	cmd.Flags().BoolVar(&reset, "reset", false, "wrap the text in reset sequences instead of a color")

	return cmd
}

// --- read --------------------------------------------------------------------

func readCmd() *cobra.Command {
	c := color.ColorGreen
	var prompt string
	var forcePrompt, noPrompt bool

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read one line from standard input and echo it in color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{
				ForceInteractive:    forcePrompt,
				ForceNonInteractive: noPrompt,
			})
			if detector.IsInteractive() {
				fmt.Fprint(cmd.ErrOrStderr(), color.Bold(prompt)+" ")
			}

			line, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			slog.Debug("Read input line", "length", len(line))

			s := color.NewColorString(c, line)
			s.Paint()
			fmt.Fprintln(cmd.OutOrStdout(), s.Colorized)
			return nil
		},
	}

	cmd.Flags().VarP(&c, "color", "c", "color to apply (red, green, blue, bold, cyan)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", ">", "prompt shown when input is a terminal")
	cmd.Flags().BoolVar(&forcePrompt, "interactive", false, "always show the prompt")
	cmd.Flags().BoolVar(&noPrompt, "non-interactive", false, "never show the prompt")
	cmd.MarkFlagsMutuallyExclusive("interactive", "non-interactive")

	return cmd
}

// readLine reads from the process stdin through the shared reader so the
// stream position is kept across calls; other readers are wrapped directly.
func readLine(r io.Reader) (string, error) {
	if r == os.Stdin {
		return input.ReadStdin()
	}
	return input.NewReader(r).ReadLine()
}

// --- config ------------------------------------------------------------------

func configCmd() *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show logging settings",
		Long: `Loads logging settings from a TOML or YAML file and prints them. Without
--file the defaults are shown.`,
		Example: `  cliutils config
  cliutils config --file logging.toml --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewLogging()
			if file != "" {
				loaded, err := config.Load(file)
				if err != nil {
					return err
				}
				cfg = loaded
				slog.Debug("Loaded logging settings", "file", file)
			}

			out := cmd.OutOrStdout()
			if format != "" {
				data, err := config.Marshal(cfg, config.Format(format))
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			enabled := color.Red("disabled")
			if cfg.Enabled {
				enabled = color.Green("enabled")
			}
			fmt.Fprintf(out, "%s %s\n", color.Bold("logging:    "), enabled)
			fmt.Fprintf(out, "%s %s\n", color.Bold("level:      "), color.Cyan(cfg.Level.String()))
			fmt.Fprintf(out, "%s %s\n", color.Bold("destination:"), color.Blue(cfg.Destination.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a .toml, .yaml or .yml file")
	cmd.Flags().StringVar(&format, "format", "", "print the settings as toml or yaml instead of a summary")

	return cmd
}
