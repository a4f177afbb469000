package production

import (
	"fmt"
	"time"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/bom"
	"honeyworks-backend/internal/models"
	"honeyworks-backend/internal/stock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type RecordInput struct {
	ProductID      uint
	Quantity       float64
	ProductionDate *time.Time // defaults to now
	Notes          string
}

// Record executes one production run: resolve the recipe, validate stock,
// then insert the production record with its material snapshot, consume the
// materials and credit the product - all inside one database transaction, so
// a failing step leaves no partial state behind.
func (s *Service) Record(in RecordInput) (*models.ProductionRecord, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("production quantity must be positive: %w", apperr.ErrValidation)
	}

	resolution, err := bom.NewResolver(s.db).ResolveRequirements(in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}
	if !resolution.HasRecipe() {
		return nil, fmt.Errorf("product %d: %w", in.ProductID, apperr.ErrNoRecipe)
	}
	if !resolution.AllSufficient {
		return nil, fmt.Errorf("product %d: %w", in.ProductID, apperr.ErrInsufficientStock)
	}

	productionDate := time.Now()
	if in.ProductionDate != nil {
		productionDate = *in.ProductionDate
	}

	totalCost := decimal.Zero
	materials := make([]models.ProductionMaterial, 0, len(resolution.Requirements))
	for _, req := range resolution.Requirements {
		materials = append(materials, models.ProductionMaterial{
			MaterialID:   req.MaterialID,
			QuantityUsed: req.QuantityRequired,
			CostAtTime:   req.CostPerUnit,
		})
		totalCost = totalCost.Add(req.CostPerUnit.Mul(decimal.NewFromFloat(req.QuantityRequired)))
	}

	record := &models.ProductionRecord{
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		ProductionDate: productionDate,
		TotalCost:      &totalCost,
		Notes:          in.Notes,
		Materials:      materials,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert production record: %w: %v", apperr.ErrStore, err)
		}

		ledger := stock.NewLedger(tx)
		for _, req := range resolution.Requirements {
			adj := stock.Adjustment{
				Delta:         -req.QuantityRequired,
				ReferenceType: models.MovementRefProduction,
				ReferenceID:   &record.ID,
			}
			// The guard inside the ledger re-checks availability, so a run
			// racing another consumer of the same material rolls back here
			// instead of leaving the stock negative.
			if err := ledger.AdjustMaterialStock(req.MaterialID, adj); err != nil {
				return err
			}
		}

		return ledger.AdjustProductStock(in.ProductID, stock.Adjustment{
			Delta:         in.Quantity,
			ReferenceType: models.MovementRefProduction,
			ReferenceID:   &record.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// List returns production history, newest first, with material details.
func (s *Service) List(limit int) ([]models.ProductionRecord, error) {
	q := s.db.Preload("Materials").Order("production_date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var records []models.ProductionRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list production records: %w: %v", apperr.ErrStore, err)
	}
	return records, nil
}
