package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newCyclesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List and read cycles (cycles are schedule-generated, read-only)",
	}
	cmd.AddCommand(
		newCyclesListCommand(),
		newCyclesReadCommand(),
	)
	return cmd
}

func newCyclesListCommand() *cobra.Command {
	var team string
	var limit int
	var active, next, previous bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cycles, optionally scoped to a team and a schedule slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := linear.CycleAny
			set := 0
			for _, s := range []struct {
				on  bool
				sel linear.CycleSelector
			}{
				{active, linear.CycleActive},
				{next, linear.CycleNext},
				{previous, linear.CyclePrevious},
			} {
				if s.on {
					selector = s.sel
					set++
				}
			}
			if set > 1 {
				return fmt.Errorf("--active, --next, and --previous are mutually exclusive")
			}
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			cycles, err := svc.ListCycles(cmd.Context(), linear.CycleListOptions{
				Team:     team,
				Selector: selector,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if cycles == nil {
				cycles = []linear.Cycle{}
			}
			return emit(cycles)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team key or name")
	cmd.Flags().BoolVar(&active, "active", false, "Only the active cycle")
	cmd.Flags().BoolVar(&next, "next", false, "Only the next cycle")
	cmd.Flags().BoolVar(&previous, "previous", false, "Only the previous cycle")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of cycles to return (0 for all)")
	return cmd
}

func newCyclesReadCommand() *cobra.Command {
	var team string
	cmd := &cobra.Command{
		Use:   "read <cycle>",
		Short: "Read one cycle by number, name, or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			cycle, err := svc.GetCycle(cmd.Context(), args[0], team)
			if err != nil {
				return err
			}
			return emit(cycle)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team key or name to scope the lookup")
	return cmd
}
