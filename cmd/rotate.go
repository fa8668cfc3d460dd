package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hatchery/internal/scheduler"
	"github.com/abhisek/hatchery/internal/species"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Refresh the legendary cache every midnight until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		loc, err := a.Config.Location()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sched := scheduler.New(a.Selector, loc, a.Logger.Named("scheduler"))
		sched.OnRotate = func(at time.Time, id species.ID) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", at.In(loc).Format(time.DateTime), speciesLabel(a.Catalog, id))
		}
		if err := sched.Start(ctx); err != nil {
			return err
		}
		a.Logger.Info("next rotation", zap.Time("at", sched.Next()))

		<-ctx.Done()
		sched.Stop()
		return nil
	},
}
