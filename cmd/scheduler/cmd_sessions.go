package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

var (
	sessionsStatus string
	upcomingHours  int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List scheduled sessions",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			var status *model.SessionStatus
			if sessionsStatus != "" {
				st := model.SessionStatus(sessionsStatus)
				if !model.ValidSessionStatus(st) {
					return fmt.Errorf("invalid status %q (confirmed, completed, cancelled)", sessionsStatus)
				}
				status = &st
			}

			sessions, err := svc.sessions.ListSessions(ctx, status)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions found")
				return nil
			}

			for _, session := range sessions {
				fmt.Printf("%s  %-10s %s — %s\n",
					session.ID, session.Status, session.FormattedTime(), session.CandidateName)
			}
			fmt.Printf("\nTotal sessions: %d\n", len(sessions))
			return nil
		})
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <session-id>",
	Short: "Show full details for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			session, err := svc.sessions.GetSessionDetails(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Session:   %s\n", session.ID)
			fmt.Printf("Candidate: %s\n", session.CandidateName)
			fmt.Printf("Email:     %s\n", session.CandidateEmail)
			fmt.Printf("Phone:     %s\n", session.CandidatePhone)
			fmt.Printf("Time:      %s\n", session.FormattedTime())
			fmt.Printf("Status:    %s\n", session.Status)
			fmt.Printf("Reminder:  %v\n", session.ReminderSent)
			if session.Notes != "" {
				fmt.Printf("Notes:     %s\n", session.Notes)
			}
			return nil
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <session-id>",
	Short: "Cancel a confirmed session and free its slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			if err := svc.sessions.CancelSession(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Session cancelled: %s\n", args[0])
			return nil
		})
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Mark a confirmed session as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			if err := svc.sessions.CompleteSession(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Session completed: %s\n", args[0])
			return nil
		})
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List confirmed sessions in the next hours",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withScheduler(func(ctx context.Context, svc *services) error {
			sessions, err := svc.sessions.ListUpcomingSessions(ctx, upcomingHours)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Printf("No upcoming sessions in the next %d hours\n", upcomingHours)
				return nil
			}

			for _, session := range sessions {
				fmt.Printf("- %s at %s (%s)\n", session.CandidateName, session.FormattedTime(), session.ID)
			}
			return nil
		})
	},
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsStatus, "status", "", "filter by status (confirmed, completed, cancelled)")
	upcomingCmd.Flags().IntVar(&upcomingHours, "hours", 24, "number of hours to look ahead")
	rootCmd.AddCommand(sessionsCmd, detailsCmd, cancelCmd, completeCmd, upcomingCmd)
}
