package cmd

import (
	"fmt"
	"meetslot-service/internal/app/services/core/availability"
	"meetslot-service/internal/pkg/scheduling"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// maxOpeningsDays bounds the expanded range so a typo cannot print years of slots.
const maxOpeningsDays = 92

func newOpeningsCmd(v *viper.Viper) *cobra.Command {
	var from, to string
	var booked []string

	cmd := &cobra.Command{
		Use:   "openings",
		Short: "List the dated free windows of an availability between two dates",
		Example: `  schedulectl openings --availability week.yaml --from 2026-03-09 --to 2026-03-15
  schedulectl openings --from 2026-03-09 --to 2026-03-09 --booked 2026-03-09=10:00-11:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v)
			if err != nil {
				return err
			}
			start, err := scheduling.ParseDate(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := scheduling.ParseDate(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if end.Before(start) || end.Sub(start).Hours()/24 >= maxOpeningsDays {
				return fmt.Errorf("range %s to %s must be ordered and span fewer than %d days", from, to, maxOpeningsDays)
			}

			avail, err := loadAvailability(v.GetString("availability"))
			if err != nil {
				return err
			}
			bookedByDate, err := parseDatedBooked(booked)
			if err != nil {
				return err
			}

			dates, err := availability.OpeningDates(avail, start, end)
			if err != nil {
				return err
			}
			openings := availability.ExpandOpenings(avail, dates, bookedByDate)

			out := cmd.OutOrStdout()
			if format != outputText {
				return render(out, format, openings)
			}
			if len(openings) == 0 {
				fmt.Fprintln(out, "No openings in range.")
				return nil
			}
			for _, o := range openings {
				fmt.Fprintf(out, "%s %-9s %s-%s\n", o.Date, o.Day, o.Start, o.End)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date of the range")
	cmd.Flags().StringVar(&to, "to", "", "last date of the range, inclusive")
	cmd.Flags().StringSliceVar(&booked, "booked", nil, "booked intervals as DATE=HH:MM-HH:MM")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func parseDatedBooked(entries []string) (map[string][]scheduling.Interval, error) {
	out := make(map[string][]scheduling.Interval, len(entries))
	for _, e := range entries {
		date, rng, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("booked %q: expected DATE=HH:MM-HH:MM", e)
		}
		d, err := scheduling.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("booked %q: %w", e, err)
		}
		iv, err := scheduling.ParseIntervalRange(rng)
		if err != nil {
			return nil, fmt.Errorf("booked %q: %w", e, err)
		}
		key := scheduling.FormatDate(d)
		out[key] = append(out[key], iv)
	}
	return out, nil
}
