package cli

import (
	"github.com/spf13/cobra"

	"soultether/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the HTTP API server.

Endpoints:
  POST /calculate_reading  compute a chart and reading from birth data
  GET  /health             liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				app.Config.Server.Port = port
			}

			srv := server.New(server.Options{
				Config:    app.Config,
				Logger:    app.Logger,
				Source:    app.Source,
				Geocoder:  app.Geocoder,
				Renderer:  app.Renderer,
				Narrative: app.Narrative,
				Log:       app.Store,
			})
			return srv.Run()
		},
	}

	cmd.Flags().Int("port", 0, "listen port (overrides config)")
	return cmd
}
