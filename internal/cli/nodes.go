package cli

import (
	"github.com/spf13/cobra"

	"soultether/internal/geometry"
)

func newNodesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "Print the Flower of Life reference nodes",
		Long: `Print the fixed reference node set used by the alignment detector.

Each node is an ecliptic angle snapped onto the 432-slot circle. The set is
deterministic; this command exists for inspection and debugging.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			nodes := geometry.Nodes()

			if output.IsJSON() {
				return output.JSON(nodes)
			}

			output.Bold("Flower of Life reference nodes (%d)", len(nodes))
			for _, n := range nodes {
				output.Printf("  %7.3f°  slot %d\n", n.Angle, n.Slot)
			}
			output.Dim("Alignment orb: %.1f°", app.Config.Chart.AlignmentOrb)
			return nil
		},
	}
}
