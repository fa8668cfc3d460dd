package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/hatchery/internal/egg"
	"github.com/abhisek/hatchery/internal/ui/theme"
)

var eggCmd = &cobra.Command{
	Use:   "egg",
	Short: "Inspect eggs",
}

var eggDescribeCmd = &cobra.Command{
	Use:   "describe <egg-id>",
	Short: "Show an egg's tier, gacha and hatch text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 0 {
			return fmt.Errorf("invalid egg id %q", args[0])
		}
		gachaName, _ := cmd.Flags().GetString("gacha")
		gacha, err := egg.ParseGachaType(gachaName)
		if err != nil {
			return err
		}
		at, err := atFlag(cmd)
		if err != nil {
			return err
		}

		waves, _ := cmd.Flags().GetInt("waves")
		if !cmd.Flags().Changed("waves") {
			waves = egg.DefaultHatchWaves(egg.Tier(id / egg.EggSeed))
		}
		e := egg.New(id, gacha, waves, at.UnixMilli())

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		gachaText, err := a.Describer.GachaTypeDescriptor(cmd.Context(), e)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		body := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %d\n%s %s",
			theme.Label.Render("Egg"), strconv.Itoa(e.ID),
			theme.Label.Render("Tier"), theme.TierStyle(e).Render(a.Describer.TierDescriptor(e)),
			theme.Label.Render("Gacha"), gachaText,
			theme.Label.Render("Waves"), e.HatchWaves,
			theme.Label.Render("Key"), e.DisplayKey(),
		)
		fmt.Fprintln(out, theme.Card.Render(body))
		fmt.Fprintln(out, theme.Hint.Render(a.Describer.HatchWavesMessage(e.HatchWaves)))
		return nil
	},
}

func init() {
	eggDescribeCmd.Flags().String("gacha", egg.GachaMove.String(), "Gacha type: move, legendary or shiny")
	eggDescribeCmd.Flags().Int("waves", 0, "Hatch waves remaining (default: the tier's default)")
	eggDescribeCmd.Flags().String("at", "", "Egg creation time (RFC 3339, YYYY-MM-DD or Unix ms); default now")

	eggCmd.AddCommand(eggDescribeCmd)
}
