package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/imrishuroy/go-dhl-labelflow/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	settingsFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "labelctl",
		Short:         "Validate DHL label arguments offline",
		Long:          "labelctl runs the label argument validation and customs reconciliation against local JSON files and a settings file.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.settingsFile, "settings", os.Getenv("SETTINGS_FILE"), "Path to the settings YAML file")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newCustomsCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func (o *rootOptions) settings() (*config.Settings, error) {
	s, err := config.Load(o.settingsFile)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
