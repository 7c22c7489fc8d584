package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
)

var (
	cfgFile   string
	hostName  string
	logLevel  string
	logFile   string
	language  string
	userName  string
	altScreen bool
)

// rootCmd shows the Settings demo.
var rootCmd = &cobra.Command{
	Use:   "tablekit",
	Short: "Browse a sample Settings screen built with tablekit",
	Long: `tablekit renders static, sectioned lists from plain data.
This command shows a sample Settings screen in the terminal or, on
handheld devices, in an SDL window.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		tablekit.Close()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSettings(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.tablekit.toml or $HOME/.tablekit.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "language for host strings (BCP 47 tag)")

	rootCmd.Flags().StringVar(&hostName, "host", hostTerminal, "where to show the screens: terminal or sdl")
	rootCmd.Flags().StringVarP(&userName, "user", "u", "Guest", "name shown in the Account section")
	rootCmd.Flags().BoolVar(&altScreen, "alt-screen", false, "use the terminal's alternate screen")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName(".tablekit")
	}

	viper.SetEnvPrefix("tablekit")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

// bindFlags copies config and environment values into flags the user did
// not set on the command line. Config keys use underscores (log_level),
// matching the rest of the tablekit config file.
func bindFlags(cmd *cobra.Command) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !viper.IsSet(key) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(key))); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}

	err := tablekit.Init(tablekit.Options{
		ConfigPath: viper.ConfigFileUsed(),
		LogPath:    logFile,
		LogLevel:   logLevel,
		Language:   language,
	})
	if err != nil {
		return err
	}

	tablekit.GetLogger().Debug("Configuration loaded",
		slog.String("config", viper.ConfigFileUsed()),
		slog.String("host", hostName))
	return nil
}
