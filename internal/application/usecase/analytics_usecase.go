package usecase

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// AnalyticsUseCase vistas de solo lectura sobre ventas. Consumidoras de la
// proyección, nunca mutadoras.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// SalesByProduct ventas agregadas por producto, con filtros de fecha,
// categoría y orden (qty|revenue). Límite por defecto: 5.
func (uc *AnalyticsUseCase) SalesByProduct(ctx context.Context, f repository.SalesFilter) ([]dto.SalesByProductResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 5
	}
	rows, err := uc.repo.SalesByProduct(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesByProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesByProductResponse{
			ProductID:    r.ProductID,
			Name:         r.Name,
			TotalQty:     r.TotalQty,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

// SalesTrend ventas por día de los últimos N días (default 7).
func (uc *AnalyticsUseCase) SalesTrend(ctx context.Context, days int) ([]dto.SalesTrendPointResponse, error) {
	if days <= 0 {
		days = 7
	}
	rows, err := uc.repo.SalesTrend(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesTrendPointResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesTrendPointResponse{
			Date:         r.Date,
			SalesCount:   r.SalesCount,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

// SalesTotals unidades e ingreso total del período filtrado.
func (uc *AnalyticsUseCase) SalesTotals(ctx context.Context, f repository.SalesFilter) (dto.SalesTotalsResponse, error) {
	totals, err := uc.repo.SalesTotals(ctx, f)
	if err != nil {
		return dto.SalesTotalsResponse{}, err
	}
	return dto.SalesTotalsResponse{
		TotalUnits:   totals.TotalUnits,
		TotalRevenue: totals.TotalRevenue,
	}, nil
}
