package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd builds the schedulectl command tree. Settings resolve in the order
// flag, SCHEDULECTL_* environment variable, config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "schedulectl",
		Short: "Offline checks for availability files and meeting exports",
		Long: `schedulectl runs the scheduling rules used by the meeting service against
local files. Availability and meeting files may be JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./schedulectl.yaml when present)")
	rootCmd.PersistentFlags().String("availability", "", "weekly availability file (JSON or YAML)")
	rootCmd.PersistentFlags().StringP("output", "o", outputText, "output format: text, json or yaml")
	rootCmd.PersistentFlags().String("timezone", "UTC", "IANA zone meeting dates are interpreted in")

	v.BindPFlag("availability", rootCmd.PersistentFlags().Lookup("availability"))
	v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	v.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))

	rootCmd.AddCommand(
		newValidateCmd(v),
		newCheckCmd(v),
		newClassifyCmd(v),
		newOpeningsCmd(v),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("schedulectl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SCHEDULECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", outputText)
	v.SetDefault("timezone", "UTC")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func outputFormat(v *viper.Viper) (string, error) {
	switch f := strings.ToLower(v.GetString("output")); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: text, json, yaml)", f)
	}
}
