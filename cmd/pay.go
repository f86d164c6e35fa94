package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/gateway"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models/dto"
	"github.com/jeffleon2/draftea-mpesa-service/internal/service"
	"github.com/spf13/cobra"
)

// payCmd runs one attempt against the gateway without a database or broker.
// Ctrl-C cancels the attempt.
func payCmd() *cobra.Command {
	var req dto.Payment

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay for a booking and wait for the confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc := service.NewPaymentService(
				gateway.NewMpesaClient(cfg.Gateway),
				nil,
				nil,
				service.PollConfig{Interval: cfg.Polling.Interval, MaxAttempts: cfg.Polling.MaxAttempts},
			)

			out := cmd.OutOrStdout()
			attempt, err := svc.PayForBooking(ctx, req, func(u service.Update) {
				fmt.Fprintf(out, "%s  attempts=%d\n", u.State, u.Attempt.AttemptsMade)
				if u.Warning != "" {
					fmt.Fprintf(out, "warning: %s\n", u.Warning)
				}
			})
			if err != nil {
				if service.IsRetryable(err) {
					fmt.Fprintln(out, "Initiation failed, you may try again.")
				}
				return err
			}

			fmt.Fprintf(out, "\nState:    %s\n", attempt.State)
			fmt.Fprintf(out, "Outcome:  %s\n", attempt.State.Outcome())
			if attempt.ReceiptNumber != "" {
				fmt.Fprintf(out, "Receipt:  %s\n", attempt.ReceiptNumber)
			}
			if attempt.FailureReason != "" {
				fmt.Fprintf(out, "Reason:   %s\n", attempt.FailureReason)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.BookingID, "booking", "b", "", "Booking id")
	cmd.Flags().StringVarP(&req.Phone, "phone", "p", "", "Payer phone number")
	cmd.Flags().Int64VarP(&req.Amount, "amount", "a", 0, "Amount in whole shillings")
	_ = cmd.MarkFlagRequired("booking")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
