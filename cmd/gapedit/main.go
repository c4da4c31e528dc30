package main

import (
	"fmt"
	"os"
	"strings"

	"example.com/gapedit/internal/app"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/fileio"
	"example.com/gapedit/pkg/logs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	root := newRootCmd(afero.NewOsFs(), func(r *app.Runner) error { return r.Run() })
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the gapedit command. Files are opened through fsys and
// the prepared Runner is handed to run.
func newRootCmd(fsys afero.Fs, run func(*app.Runner) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GAPEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "gapedit [files...]",
		Short:        "A terminal text editor built on per-line gap buffers",
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fsys, v)
			if err != nil {
				return err
			}
			theme, err := cfg.Theme(fsys)
			if err != nil {
				return fmt.Errorf("theme: %w", err)
			}
			r := app.New(cfg, fileio.NewStore(fsys, app.DocOptions(cfg)...), openLogger(fsys, v))
			r.Theme = theme
			for _, path := range args {
				if err := r.LoadFile(path); err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
			}
			return run(r)
		},
	}

	root.PersistentFlags().StringP("config", "c", "",
		"config file (default: ~/.gapedit/config.yaml)")
	root.PersistentFlags().Int("tab-width", config.DefaultTabWidth, "columns per tab stop")
	root.PersistentFlags().String("theme", "", "builtin theme name or base16/alacritty theme file")
	root.PersistentFlags().Int("line-capacity", config.DefaultLineCapacity, "initial gap capacity of each line")
	root.Flags().String("log-file", "", "write JSON event log to this file")

	for _, name := range []string{"config", "tab-width", "theme", "line-capacity"} {
		_ = v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}
	_ = v.BindPFlag("log-file", root.Flags().Lookup("log-file"))

	root.AddCommand(newConfigCmd(fsys, v))
	return root
}

// newConfigCmd prints the effective configuration as YAML.
func newConfigCmd(fsys afero.Fs, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fsys, v)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// loadConfig reads the config file and applies flag and GAPEDIT_* env
// overrides on top of it.
func loadConfig(fsys afero.Fs, v *viper.Viper) (*config.Config, error) {
	path := v.GetString("config")
	if path != "" {
		if ok, _ := afero.Exists(fsys, path); !ok {
			return nil, fmt.Errorf("config file %s not found", path)
		}
	} else {
		home, _ := os.UserHomeDir()
		path = config.DefaultPath(home)
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(fsys, path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if v.IsSet("tab-width") {
		if n := v.GetInt("tab-width"); n > 0 {
			cfg.TabWidth = n
		}
	}
	if v.IsSet("line-capacity") {
		if n := v.GetInt("line-capacity"); n > 0 {
			cfg.LineCapacity = n
		}
	}
	if theme := v.GetString("theme"); theme != "" {
		cfg.ThemeName = theme
	}
	return cfg, nil
}

func openLogger(fsys afero.Fs, v *viper.Viper) *logs.Logger {
	if path := v.GetString("log-file"); path != "" {
		return logs.New(fsys, path)
	}
	return logs.NewFromEnv()
}
