package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/farmstand/internal/application/product"
	"github.com/farmstand/internal/config"
	"github.com/farmstand/internal/domain"
	"github.com/farmstand/internal/infrastructure/dynamo"
	"github.com/spf13/cobra"
)

func newSeedCmd(logger *slog.Logger, load func() *config.Config, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := load()
			client, err := dynamo.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			svc := product.NewService(dynamo.NewProductRepo(client, cfg.DynamoTables.Products))
			n, err := seed(cmd.Context(), svc, stdout)
			if err != nil {
				return err
			}
			logger.Info("seeded products", "count", n)
			return nil
		},
	}
}

func seedProducts() []domain.ProductInput {
	p := func(f float64) *float64 { return &f }
	return []domain.ProductInput{
		{Name: "Fairy Eggplant", Price: p(1.00), Category: "vegetable"},
		{Name: "Organic Goddess Melon", Price: p(4.99), Category: "fruit"},
		{Name: "Organic Mini Seedless Watermelon", Price: p(3.99), Category: "fruit"},
		{Name: "Organic Celery", Price: p(1.50), Category: "vegetable"},
		{Name: "Chocolate Whole Milk", Price: p(2.69), Category: "dairy"},
	}
}

// seed stops at the first product the store rejects.
func seed(ctx context.Context, svc product.Service, out io.Writer) (int, error) {
	for i, in := range seedProducts() {
		created, err := svc.Create(ctx, in)
		if err != nil {
			return i, fmt.Errorf("seed %q: %w", in.Name, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", created.ID, created.Name)
	}
	return len(seedProducts()), nil
}
