package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"soultether/internal/chart"
	"soultether/internal/geometry"
	"soultether/internal/models"
	"soultether/internal/store"
)

func newReadingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reading <date> <time> <location>",
		Short: "Compute a chart reading from the command line",
		Long: `Compute a natal chart and print the full reading.

Date is YYYY-MM-DD, time is HH:MM in 24-hour form, location is a free-text
place name resolved through the geocoding providers.`,
		Example: `  soultether reading 1990-06-15 14:30 "New York, NY"
  soultether reading 1985-01-01 06:00 London --save`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			birth, err := time.Parse(models.BirthTimeLayout, args[0]+" "+args[1])
			if err != nil {
				return fmt.Errorf("invalid date or time: %w", err)
			}

			ctx := cmd.Context()
			loc, err := app.Geocoder.Lookup(ctx, args[2])
			if err != nil {
				return fmt.Errorf("geocoding %q: %w", args[2], err)
			}

			subject := models.Subject{Birth: birth, Latitude: loc.Latitude, Longitude: loc.Longitude}
			record, err := chart.Compute(subject, app.Source)
			if err != nil {
				return err
			}
			record.Location = args[2]

			hits := geometry.Detect(record.Planets, geometry.Nodes(), app.Config.Chart.AlignmentOrb)
			text, err := app.Renderer.Render(record, hits)
			if err != nil {
				return err
			}

			if app.Narrative != nil {
				if prose, nerr := app.Narrative.Narrate(ctx, text, hits); nerr == nil {
					text = prose
				} else {
					app.Logger.Warn().Err(nerr).Msg("narrative generation failed")
				}
			}

			if app.Store != nil {
				entry := &store.ReadingEntry{
					Timestamp: time.Now().UTC(),
					Birth:     record.Birth,
					Location:  record.Location,
					Fidelity:  record.Fidelity,
					Hits:      hits,
					Reading:   text,
				}
				logCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				if err := app.Store.SaveReading(logCtx, entry); err != nil {
					app.Logger.Warn().Err(err).Msg("failed to log reading")
				}
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				path, _ := cmd.Flags().GetString("out")
				if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
					output.Warning("failed to save reading: %v", err)
				} else {
					output.Dim("Reading saved to %s", path)
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"reading": text,
					"chart":   record,
					"hits":    hits,
				})
			}

			output.Println(text)
			if record.Fidelity == models.FidelityDegraded {
				output.Warning("Computed with the approximate ephemeris; positions are low fidelity.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("save", false, "write the reading to a text file")
	cmd.Flags().String("out", "soultether_reading.txt", "output path for --save")
	cmd.AddCommand(newReadingListCmd(app))
	return cmd
}

func newReadingListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [limit]",
		Short: "List previously saved readings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("no reading log configured")
			}

			limit := 10
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("limit must be a positive integer")
				}
				limit = n
			}

			entries, err := app.Store.ListReadings(cmd.Context(), store.ReadingFilter{Limit: limit})
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}
			if len(entries) == 0 {
				output.Dim("No readings logged yet.")
				return nil
			}
			for _, e := range entries {
				output.Printf("#%d  %s  %s  %s  %d hits\n",
					e.ID, e.Timestamp.Format("2006-01-02 15:04"), e.Birth, e.Fidelity, e.HitCount)
			}
			return nil
		},
	}
	return cmd
}
