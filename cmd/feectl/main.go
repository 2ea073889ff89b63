package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata"

	"manga-cafe-billing/internal/cli"
	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/pkg/clock"
	"manga-cafe-billing/internal/pkg/config"
	"manga-cafe-billing/internal/usecase"
)

func main() {
	tariff, err := config.LoadTariffConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Diagnostics go to stderr so formatted output can be piped.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	uc := usecase.NewFeeUseCase(fee.NewDefaultCalculator(), usecase.NopRecorder(), clock.Real(), logger)

	if err := cli.NewRootCmd(uc, tariff).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
