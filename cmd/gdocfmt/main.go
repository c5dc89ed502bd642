// Package main provides the command-line interface for gdocfmt.
// It normalizes HTML from files or standard input and writes the resulting
// fragments to standard output or a file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrjoshuak/gdocfmt"
)

var (
	configFile string
	outputFile string

	rootCmd = &cobra.Command{
		Use:   "gdocfmt [FILE...]",
		Short: "Normalize editor-exported HTML into portable markup",
		Long: "gdocfmt reads HTML exported from Google Docs or pasted from a word processor\n" +
			"and writes a fragment that keeps only portable formatting.\n" +
			"With no FILE, or when FILE is -, it reads standard input.",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initConfig()
		},
		RunE: execute,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = gdocfmt.Version

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./gdocfmt.yaml, then the user config dir)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")
	rootCmd.Flags().Bool("nest-lists", true, "nest flat lists by the level in their list class")
	rootCmd.Flags().Bool("monospace-code", true, "promote monospace paragraphs to <pre> blocks")
	rootCmd.Flags().Int64("max-size", 10*1024*1024, "maximum input size in bytes, 0 for no limit")
	rootCmd.Flags().Bool("debug", false, "log each pass to stderr")

	// Config bindings
	_ = viper.BindPFlag("nest_lists", rootCmd.Flags().Lookup("nest-lists"))
	_ = viper.BindPFlag("monospace_code", rootCmd.Flags().Lookup("monospace-code"))
	_ = viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

// initConfig loads the optional config file and GDOCFMT_* environment
// variables. Flags set on the command line take precedence over both.
func initConfig() error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "gdocfmt"))
		}
		viper.SetConfigName("gdocfmt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("gdocfmt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
	}
	return nil
}

func execute(cmd *cobra.Command, args []string) error {
	f := gdocfmt.New(
		gdocfmt.WithNestFlatLists(viper.GetBool("nest_lists")),
		gdocfmt.WithMonospaceCode(viper.GetBool("monospace_code")),
		gdocfmt.WithMaxInputSize(viper.GetInt64("max_size")),
		gdocfmt.WithLogger(log.Default()),
	)

	if len(args) == 0 {
		args = []string{"-"}
	}

	w := cmd.OutOrStdout()
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close() //nolint:errcheck
		w = file
	}

	for _, arg := range args {
		if err := formatSource(cmd, f, arg, w); err != nil {
			return err
		}
	}
	return nil
}

// formatSource formats one input, a file path or - for stdin, into w.
func formatSource(cmd *cobra.Command, f gdocfmt.Formatter, path string, w io.Writer) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer file.Close() //nolint:errcheck
		r = file
	}

	out, err := f.FormatReader(r)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", path, err)
	}
	log.Debug("Formatted source", "source", path, "bytes", len(out))

	_, err = fmt.Fprintln(w, out)
	return err
}
