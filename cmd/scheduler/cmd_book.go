package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/service"
)

var bookReq service.BookingRequest

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book an interview session",
	Long:  "Book an interview session. Without --slot the earliest available slot is used.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			sessionID, err := svc.booking.BookSession(ctx, bookReq)
			if err != nil {
				return err
			}

			session, err := svc.sessions.GetSessionDetails(ctx, sessionID)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Session booked: %s\n", sessionID)
			fmt.Printf("  Candidate: %s\n", session.CandidateName)
			fmt.Printf("  Time:      %s\n", session.FormattedTime())
			return nil
		})
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookReq.CandidateName, "name", "", "candidate name")
	bookCmd.Flags().StringVar(&bookReq.CandidateEmail, "email", "", "candidate email")
	bookCmd.Flags().StringVar(&bookReq.CandidatePhone, "phone", "", "candidate phone")
	bookCmd.Flags().StringVar(&bookReq.SlotID, "slot", "", "specific slot id to book")
	bookCmd.Flags().StringVar(&bookReq.Notes, "notes", "", "additional notes")
	rootCmd.AddCommand(bookCmd)
}
