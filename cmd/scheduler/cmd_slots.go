package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var slotsDays int

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List available interview slots",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			slots, err := svc.slots.ListAvailableSlots(ctx, slotsDays)
			if err != nil {
				return err
			}

			if len(slots) == 0 {
				fmt.Println("No available slots found")
				return nil
			}

			fmt.Printf("Available interview slots (next %d days):\n", slotsDays)
			for i, slot := range slots {
				fmt.Printf("%2d. %s  (%s)\n", i+1, slot.FormattedStart(), slot.ID)
			}
			fmt.Printf("\nTotal available slots: %d\n", len(slots))
			return nil
		})
	},
}

func init() {
	slotsCmd.Flags().IntVar(&slotsDays, "days", 7, "number of days to look ahead")
	rootCmd.AddCommand(slotsCmd)
}
