package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check reminders every interval and announce the ones coming up.",
		Long: `Runs until interrupted. Reminders due within the next few minutes are
printed once, and sent over WhatsApp when TWILIO_* and NOTIFY_WHATSAPP_TO are set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			a.planner.OnReminderDue(a.printer.Notification)
			if err := a.planner.StartScheduler(); err != nil {
				return err
			}
			a.logger.Printf("watching reminders every %s", a.cfg.CheckInterval)

			waitForShutdown(a)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func waitForShutdown(a *app) {
	stopCtx := make(chan os.Signal, 1)
	signal.Notify(stopCtx, syscall.SIGINT, syscall.SIGTERM)
	<-stopCtx
	a.logger.Println("shutting down...")

	a.planner.StopScheduler()
}
