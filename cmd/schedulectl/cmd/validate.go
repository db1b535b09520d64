package cmd

import (
	"errors"
	"fmt"
	"meetslot-service/internal/pkg/scheduling"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errInvalidAvailability = errors.New("availability has problems")

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Report every problem in a weekly availability file",
		Long: `Validate checks each available day for slots that end before they start,
slots that overlap and days with no slots, and checks the time gap. Every
problem is reported, not just the first. The exit code is 1 when any is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("availability")
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("an availability file is required")
			}
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			w, err := loadAvailability(path)
			if err != nil {
				return err
			}
			problems := w.Validate()
			if problems == nil {
				problems = scheduling.ValidationErrors{}
			}

			out := cmd.OutOrStdout()
			if format == outputText {
				if len(problems) == 0 {
					fmt.Fprintf(out, "%s: ok\n", path)
				}
				for _, p := range problems {
					fmt.Fprintf(out, "%-16s %s\n", p.Kind, p.Message)
				}
			} else if err := render(out, format, problems); err != nil {
				return err
			}

			if len(problems) > 0 {
				return fmt.Errorf("%w: %d found", errInvalidAvailability, len(problems))
			}
			return nil
		},
	}
}
