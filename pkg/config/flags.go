package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrHelp is returned when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

// CLI holds the settings of the resumeparse command.
type CLI struct {
	Config
	File      string
	MediaType string // overrides the extension-based guess
	Output    string // "" or "-" means stdout
	Compact   bool
}

// LoadCLI merges environment defaults (Load) with RESUME_* env vars and flags.
// Flags win over RESUME_* variables, which win over the plain service variables.
func LoadCLI(name string, args []string, stderr io.Writer) (*CLI, error) {
	base := Load()

	v := viper.New()
	v.SetEnvPrefix("RESUME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("provider", base.Provider, "Model provider: gemini or openrouter")
	fs.String("model", "", "Model id (defaults to the provider's configured model)")
	fs.String("media-type", "", "Declared media type; guessed from the file extension when empty")
	fs.StringP("output", "o", "", "Write the JSON record to this file instead of stdout")
	fs.Bool("compact", false, "Print compact JSON")
	fs.Duration("timeout", base.ExtractTimeout, "Timeout for the extraction call")
	fs.Int64("max-bytes", base.MaxUploadBytes, "Maximum file size in bytes")
	fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <resume.pdf|resume.docx|resume.txt>\n\n", name)
		fmt.Fprintf(stderr, "Extracts structured resume fields with a remote model and prints them as JSON.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment: GEMINI_API_KEY or OPENROUTER_API_KEY, RESUME_<FLAG> overrides.\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("exactly one input file is required")
	}

	cli := &CLI{
		Config:    base,
		File:      fs.Arg(0),
		MediaType: v.GetString("media-type"),
		Output:    v.GetString("output"),
		Compact:   v.GetBool("compact"),
	}
	cli.Provider = strings.ToLower(v.GetString("provider"))
	cli.LogLevel = strings.ToLower(v.GetString("log-level"))
	cli.MaxUploadBytes = v.GetInt64("max-bytes")
	cli.ExtractTimeout = v.GetDuration("timeout")
	if model := v.GetString("model"); model != "" {
		if cli.Provider == ProviderOpenRouter {
			cli.OpenRouterModel = model
		} else {
			cli.GeminiModel = model
		}
	}

	if err := cli.Config.Validate(); err != nil {
		return nil, err
	}
	return cli, nil
}
