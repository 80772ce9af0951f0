package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// CashUseCase movimientos de caja (ingresos/gastos no ligados a ventas) y el
// resumen de caja.
type CashUseCase struct {
	repo          repository.CashMovementRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewCashUseCase construye el caso de uso de caja.
func NewCashUseCase(repo repository.CashMovementRepository, analyticsRepo repository.AnalyticsRepository) *CashUseCase {
	return &CashUseCase{repo: repo, analyticsRepo: analyticsRepo}
}

// Create registra un movimiento de caja.
func (uc *CashUseCase) Create(ctx context.Context, userID *int64, in dto.CreateCashMovementRequest) (int64, error) {
	movType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return 0, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.MovementDate)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(ctx, &entity.CashMovement{
		Type:         movType,
		Amount:       in.Amount,
		Category:     in.Category,
		Description:  in.Description,
		MovementDate: date,
		CreatedBy:    userID,
	})
}

// List devuelve los últimos movimientos de caja.
func (uc *CashUseCase) List(ctx context.Context, limit int) ([]dto.CashMovementResponse, error) {
	movs, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.CashMovementResponse{
			ID:           m.ID,
			Type:         string(m.Type),
			Amount:       m.Amount,
			Category:     m.Category,
			Description:  m.Description,
			MovementDate: m.MovementDate.Format("2006-01-02"),
			CreatedBy:    m.CreatedBy,
		})
	}
	return out, nil
}

// Summary devuelve ingresos totales (ventas + otros ingresos), egresos y el
// balance resultante.
func (uc *CashUseCase) Summary(ctx context.Context) (dto.CashSummaryResponse, error) {
	fin, err := uc.analyticsRepo.FinancialSummary(ctx, nil, nil)
	if err != nil {
		return dto.CashSummaryResponse{}, err
	}
	income := fin.SalesIncome.Add(fin.OtherIncome)
	return dto.CashSummaryResponse{
		TotalIncome:  income,
		TotalExpense: fin.Expense,
		Balance:      income.Sub(fin.Expense),
	}, nil
}
