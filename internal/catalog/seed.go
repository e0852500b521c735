package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db/models"
	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/shopspring/decimal"
)

var seedNames = []string{
	"Coca-Cola",
	"Sparkling Water",
	"Orange Juice",
	"Espresso",
	"Green Tea",
	"Lager",
	"Red Wine",
	"Tonic",
	"Apple Juice",
	"Cava",
}

// randomProducts generates the mock trolley inventory: between min and max
// products, stock 0..maxStock, EUR price 1-5, alternates derived once from
// the configured rates and then rounded independently.
func randomProducts(cfg config.CatalogConfig) []models.Product {
	minCount, maxCount := cfg.SeedMinProducts, cfg.SeedMaxProducts
	if minCount <= 0 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	count := minCount + rand.IntN(maxCount-minCount+1)

	maxStock := cfg.SeedMaxStock
	if maxStock < 0 {
		maxStock = 0
	}

	usdRate := decimal.NewFromFloat(cfg.USDRate)
	gbpRate := decimal.NewFromFloat(cfg.GBPRate)

	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		eur := money.Round2(decimal.NewFromFloat(rand.Float64()*4 + 1))
		product := models.Product{
			ID:    int64(i + 1),
			Name:  seedName(i),
			Stock: rand.IntN(maxStock + 1),
		}
		product.SetPrice(money.NewPrice(
			eur,
			money.Round2(eur.Mul(usdRate)),
			money.Round2(eur.Mul(gbpRate)),
		))
		products = append(products, product)
	}
	return products
}

func seedName(i int) string {
	name := seedNames[i%len(seedNames)]
	if i < len(seedNames) {
		return name
	}
	return fmt.Sprintf("%s %d", name, i/len(seedNames)+1)
}
