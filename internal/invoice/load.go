package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerdesk/gridkit/internal/logging"
)

// Load reads one JSON file containing an array of invoices and validates
// every record.
func Load(path string) ([]Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var invoices []Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, inv := range invoices {
		if err := inv.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return invoices, nil
}

// LoadAll reads several invoice files concurrently and concatenates them
// in argument order, so the combined dataset is deterministic regardless
// of which file finishes first. Any single failure aborts the load.
func LoadAll(ctx context.Context, paths []string) ([]Invoice, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	log := logging.FromContext(ctx)

	batches := make([][]Invoice, len(paths))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		group.Go(func() error {
			invoices, err := Load(path)
			if err != nil {
				return err
			}
			batches[i] = invoices
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var merged []Invoice
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	log.Debug().
		Str("component", "invoice").
		Str("operation", "load_all").
		Int("files", len(paths)).
		Int("rows", len(merged)).
		Msg("loaded invoice dataset")

	return merged, nil
}
