// Command trackctl resolves tracking numbers from the command line using the
// same client selection the dashboard performs: proxy, direct Trackship, or
// the built-in mock, depending on environment configuration.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/core/service"
	"github.com/workspace/tracking-proxy/internal/pkg/config"
	"github.com/workspace/tracking-proxy/pkg/logger"
)

func main() {
	orderID := flag.String("order", "", "order id to register the shipment under")
	postalCode := flag.String("postal", "", "destination postal code")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: trackctl [-order ID] [-postal CODE] TRACKING_NUMBER...")
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	client := service.SelectTrackingClient(cfg, log)
	ctx := context.Background()

	if flag.NArg() == 1 {
		status, err := client.GetTrackingStatus(ctx, ports.StatusRequest{
			TrackingNumber: flag.Arg(0),
			OrderID:        *orderID,
			PostalCode:     *postalCode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("tracking lookup failed")
		}
		printJSON(status)
		return
	}

	// Several numbers: batch lookup, failures become placeholders.
	statuses, err := client.GetBatchTrackingStatus(ctx, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("batch lookup failed")
	}
	printJSON(statuses)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
