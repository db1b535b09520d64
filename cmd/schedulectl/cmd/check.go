package cmd

import (
	"fmt"
	"meetslot-service/internal/pkg/scheduling"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type checkFlags struct {
	date     string
	start    string
	end      string
	duration string
	booked   []string
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decide whether a booking fits an availability",
		Example: `  schedulectl check --availability week.yaml --date 2026-03-10 --start 10:00 --duration 45
  schedulectl check --date 10/03/2026 --start "2:30 PM" --end 15:30 --booked 13:00-14:00,16:00-17:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v)
			if err != nil {
				return err
			}
			avail, err := loadAvailability(v.GetString("availability"))
			if err != nil {
				return err
			}

			req, err := scheduling.NormalizeBooking(scheduling.RawMeeting{
				Date:      f.date,
				StartTime: f.start,
				EndTime:   f.end,
				Duration:  scheduling.FlexString(f.duration),
			})
			if err != nil {
				return err
			}

			booked, err := parseBooked(f.booked)
			if err != nil {
				return err
			}

			decision := req.Check(avail, booked)
			out := cmd.OutOrStdout()
			if format != outputText {
				return render(out, format, decision)
			}
			fmt.Fprintf(out, "%s %s %s\n", scheduling.FormatDate(req.Date), req.Interval, decision.Kind)
			if decision.Message != "" {
				fmt.Fprintf(out, "  %s\n", decision.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.date, "date", "", "booking date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&f.start, "start", "", "start time (24h or 12h clock)")
	cmd.Flags().StringVar(&f.end, "end", "", "end time")
	cmd.Flags().StringVar(&f.duration, "duration", "", "duration in minutes, used when --end is empty")
	cmd.Flags().StringSliceVar(&f.booked, "booked", nil, "intervals already booked on the date, as HH:MM-HH:MM")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagsMutuallyExclusive("end", "duration")
	cmd.MarkFlagsOneRequired("end", "duration")
	return cmd
}

func parseBooked(ranges []string) ([]scheduling.Interval, error) {
	booked := make([]scheduling.Interval, 0, len(ranges))
	for _, r := range ranges {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		iv, err := scheduling.ParseIntervalRange(r)
		if err != nil {
			return nil, fmt.Errorf("booked %q: %w", r, err)
		}
		booked = append(booked, iv)
	}
	return booked, nil
}
