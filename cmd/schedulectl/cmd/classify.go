package cmd

import (
	"fmt"
	"meetslot-service/internal/pkg/scheduling"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type classifiedMeeting struct {
	ID       string              `json:"id"`
	Title    string              `json:"title,omitempty"`
	Date     string              `json:"date,omitempty"`
	Time     string              `json:"time,omitempty"`
	Category scheduling.Category `json:"category"`
}

func newClassifyCmd(v *viper.Viper) *cobra.Command {
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "classify [meetings-file]",
		Short: "Bucket meetings into upcoming, pending, cancelled and past for a viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v)
			if err != nil {
				return err
			}
			viewer := v.GetString("viewer")
			if viewer == "" {
				return fmt.Errorf("--viewer is required")
			}
			loc, err := time.LoadLocation(v.GetString("timezone"))
			if err != nil {
				return err
			}
			now := time.Now().In(loc)
			if nowFlag != "" {
				parsed, err := time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				now = parsed.In(loc)
			}

			path := v.GetString("meetings")
			if len(args) == 1 {
				path = args[0]
			}
			raws, err := loadMeetings(path)
			if err != nil {
				return err
			}
			records := make([]scheduling.MeetingRecord, 0, len(raws))
			for _, raw := range raws {
				records = append(records, scheduling.NormalizeMeeting(raw))
			}
			buckets := scheduling.Bucket(records, viewer, now)

			out := cmd.OutOrStdout()
			if format != outputText {
				grouped := make(map[scheduling.Category][]classifiedMeeting, len(buckets))
				for c, ms := range buckets {
					grouped[c] = make([]classifiedMeeting, 0, len(ms))
					for _, m := range ms {
						grouped[c] = append(grouped[c], describe(m, c))
					}
				}
				return render(out, format, grouped)
			}
			for _, c := range scheduling.Categories {
				fmt.Fprintf(out, "%s (%d)\n", c, len(buckets[c]))
				for _, m := range buckets[c] {
					d := describe(m, c)
					fmt.Fprintf(out, "  %-12s %s %s %s\n", d.ID, d.Date, d.Time, d.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("meetings", "", "meetings file (JSON or YAML list)")
	cmd.Flags().String("viewer", "", "identity the meetings are classified for")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time as RFC3339 (default is the current time)")
	v.BindPFlag("meetings", cmd.Flags().Lookup("meetings"))
	v.BindPFlag("viewer", cmd.Flags().Lookup("viewer"))
	return cmd
}

func describe(m scheduling.MeetingRecord, c scheduling.Category) classifiedMeeting {
	d := classifiedMeeting{ID: m.ID, Title: m.Title, Category: c}
	if !m.Date.IsZero() {
		d.Date = scheduling.FormatDate(m.Date)
	}
	if m.Interval.Valid() {
		d.Time = m.Interval.String()
	}
	return d
}
