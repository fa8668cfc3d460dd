package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/hatchery/internal/legendary"
	"github.com/abhisek/hatchery/internal/species"
	"github.com/abhisek/hatchery/internal/ui/theme"
)

var legendaryCmd = &cobra.Command{
	Use:   "legendary",
	Short: "Show the featured legendary",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := atFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		id, err := a.Selector.SpeciesFor(cmd.Context(), at)
		if err != nil {
			return fmt.Errorf("select legendary: %w", err)
		}
		scheduled, err := a.Selector.Compute(at)
		if err != nil {
			return fmt.Errorf("compute schedule: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("Featured legendary"))
		fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Date"), at.Format(time.DateOnly))
		fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Species"), theme.Highlight.Render(speciesLabel(a.Catalog, id)))
		if id != scheduled {
			fmt.Fprintln(out, theme.Warning.Render(
				fmt.Sprintf("Override in effect (scheduled: %s)", speciesLabel(a.Catalog, scheduled))))
		}
		return nil
	},
}

var legendaryUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List the scheduled rotation for the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			return fmt.Errorf("--days must be positive, got %d", days)
		}
		from, err := atFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		rot, err := a.Selector.Upcoming(from, days)
		if err != nil {
			return fmt.Errorf("compute schedule: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s  %s\n", "Date", "Species")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, r := range rot {
			fmt.Fprintf(out, "%-10s  %s\n", r.Day.Format(time.DateOnly), speciesLabel(a.Catalog, r.Species))
		}
		return nil
	},
}

var legendaryPinCmd = &cobra.Command{
	Use:   "pin <species-id>",
	Short: "Pin a species as today's legendary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid species id %q: %w", args[0], err)
		}
		at, err := atFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		id := species.ID(n)
		if _, ok := a.Catalog.Get(id); !ok {
			return fmt.Errorf("species %d not in catalog", id)
		}
		if err := a.Selector.Pin(cmd.Context(), id, at); err != nil {
			return fmt.Errorf("pin legendary: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s for %s\n", speciesLabel(a.Catalog, id), at.Format(time.DateOnly))
		return nil
	},
}

var legendaryHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past writes to the legendary cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		h, ok := a.History()
		if !ok {
			return fmt.Errorf("the %s store does not keep history", a.Config.Store.Backend)
		}
		revs, err := h.History(cmd.Context(), legendary.KeySpecies, limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(revs) == 0 {
			fmt.Fprintln(out, "No cache writes recorded.")
			return nil
		}
		fmt.Fprintf(out, "%-5s  %-19s  %s\n", "Seq", "Written", "Species")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, r := range revs {
			label := theme.Hint.Render("(cleared)")
			if !r.Deleted {
				if n, err := strconv.Atoi(r.Value); err == nil {
					label = speciesLabel(a.Catalog, species.ID(n))
				} else {
					label = r.Value
				}
			}
			fmt.Fprintf(out, "%-5d  %-19s  %s\n", r.Sequence, r.WrittenAt.Local().Format("2006-01-02 15:04:05"), label)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{legendaryCmd, legendaryUpcomingCmd, legendaryPinCmd} {
		c.Flags().String("at", "", "Point in time (RFC 3339, YYYY-MM-DD or Unix ms); default now")
	}
	legendaryUpcomingCmd.Flags().Int("days", 7, "Number of days to list")
	legendaryHistoryCmd.Flags().Int("limit", 20, "Maximum number of entries (0 = all)")

	legendaryCmd.AddCommand(legendaryUpcomingCmd)
	legendaryCmd.AddCommand(legendaryPinCmd)
	legendaryCmd.AddCommand(legendaryHistoryCmd)
}

func atFlag(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("at")
	return parseAt(s, time.Now())
}

// speciesLabel renders "Name #id", or just "#id" for unknown species.
func speciesLabel(c *species.Catalog, id species.ID) string {
	if sp, ok := c.Get(id); ok {
		return fmt.Sprintf("%s #%d", sp.DisplayName(), id)
	}
	return fmt.Sprintf("#%d", id)
}
