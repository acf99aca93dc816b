package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/product"
	prodDto "github.com/fekuna/secure-duka/internal/product/dto"
	prodRepo "github.com/fekuna/secure-duka/internal/product/repository"
	prodUC "github.com/fekuna/secure-duka/internal/product/usecase"
	"github.com/fekuna/secure-duka/internal/sale"
	saleDto "github.com/fekuna/secure-duka/internal/sale/dto"
	saleRepo "github.com/fekuna/secure-duka/internal/sale/repository"
	saleUC "github.com/fekuna/secure-duka/internal/sale/usecase"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	seedDays        = 5
	seedMinQuantity = 2
	seedMaxQuantity = 8
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a sample product with five days of sales history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		defer log.Sync()

		db, err := openMigrated(cmd, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		products := prodUC.NewProductUseCase(prodRepo.NewSQLRepository(db), log)
		sales := saleUC.NewSaleUseCase(saleRepo.NewSQLRepository(db), log)

		p, history, err := seedSampleProduct(cmd.Context(), products, sales, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), time.Now())
		if err != nil {
			return err
		}
		log.Info("Seeded sample product", zap.Int64("product_id", p.ID), zap.Int("sales", len(history)))
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully seeded %s with %d days of history!\n", p.Name, seedDays)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seedSampleProduct backfills one sale per day for the last seedDays days,
// today included. Stock is left at its initial value.
func seedSampleProduct(ctx context.Context, products product.UseCase, sales sale.UseCase, rnd *rand.Rand, now time.Time) (*model.Product, []model.Sale, error) {
	p, err := products.CreateProduct(ctx, &prodDto.CreateProductInput{
		Name:  "Blue Band 500g",
		Price: decimal.NewFromInt(250),
		Stock: 50,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create sample product: %w", err)
	}

	history := make([]model.Sale, 0, seedDays)
	for i := 0; i < seedDays; i++ {
		s, err := sales.ImportSale(ctx, &saleDto.ImportSaleInput{
			ProductID: p.ID,
			Quantity:  seedMinQuantity + rnd.IntN(seedMaxQuantity-seedMinQuantity+1),
			SaleDate:  now.AddDate(0, 0, -i),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("import sample sale: %w", err)
		}
		history = append(history, *s)
	}
	return p, history, nil
}
