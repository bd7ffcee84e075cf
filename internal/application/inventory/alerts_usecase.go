package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/domain/repository"
)

// StockAlertUseCase genera las alertas de stock bajo y el resumen del dashboard.
// Solo lectura: nunca modifica saldos ni el ledger.
type StockAlertUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	limits       Limits
}

// NewStockAlertUseCase construye el caso de uso de alertas.
func NewStockAlertUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	limits Limits,
) *StockAlertUseCase {
	return &StockAlertUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		limits:       limits,
	}
}

// ListStockAlerts devuelve los productos con saldo en o bajo su mínimo y la cantidad
// sugerida para volver al doble del mínimo. Mayor déficit primero.
func (uc *StockAlertUseCase) ListStockAlerts(ctx context.Context) ([]dto.StockAlertDTO, error) {
	items, err := uc.productRepo.ListLowStock(ctx, uc.limits.AlertsLimit)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertDTO, 0, len(items))
	for _, it := range items {
		suggested := it.MinimumStock*2 - it.StockQuantity
		if suggested < 0 {
			suggested = 0
		}
		alerts = append(alerts, dto.StockAlertDTO{
			ProductID:           it.ProductID,
			SKU:                 it.SKU,
			ProductName:         it.Name,
			CurrentStock:        it.StockQuantity,
			MinimumStock:        it.MinimumStock,
			Deficit:             it.MinimumStock - it.StockQuantity,
			SuggestedOrderQty:   suggested,
			EstimatedOrderValue: it.Price.Mul(decimal.NewFromInt(int64(suggested))),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Deficit != alerts[j].Deficit {
			return alerts[i].Deficit > alerts[j].Deficit
		}
		return alerts[i].SKU < alerts[j].SKU
	})
	return alerts, nil
}

// Summary arma las métricas del dashboard: totales, stock bajo, valorización y
// los movimientos más recientes.
//
// Las consultas son independientes y corren en paralelo; el primer error cancela el resto.
func (uc *StockAlertUseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	var out dto.DashboardSummary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.TotalProducts, err = uc.productRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalMovements, err = uc.movementRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.LowStockCount, err = uc.productRepo.CountLowStock(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.StockValuation, err = uc.productRepo.StockValuation(ctx)
		return err
	})
	g.Go(func() error {
		list, _, err := uc.movementRepo.List(ctx, repository.MovementFilter{Limit: uc.limits.RecentActivityLimit})
		if err != nil {
			return err
		}
		out.RecentActivities = make([]dto.MovementResponse, 0, len(list))
		for _, m := range list {
			out.RecentActivities = append(out.RecentActivities, toMovementResponse(m))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resumen de inventario: %w", err)
	}
	return &out, nil
}
