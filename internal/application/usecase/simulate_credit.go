package usecase

import (
	"context"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/pkg/numeric"
)

// SimulateCreditUseCase computes the cost of a credit without scoring it:
// installment, total cost, and optionally the affordability KPIs and the full
// amortization schedule. Advisers use it to tune terms before submitting.
type SimulateCreditUseCase struct{}

// NewSimulateCreditUseCase creates the simulation use case.
func NewSimulateCreditUseCase() *SimulateCreditUseCase {
	return &SimulateCreditUseCase{}
}

// Execute runs one simulation.
func (uc *SimulateCreditUseCase) Execute(
	ctx context.Context,
	req dto.SimulateCreditRequest,
) (dto.SimulateCreditResponse, error) {
	montant := numeric.Float(req.MontantCredit, 0)
	duree := numeric.Int(req.DureeCredit, 0)
	taux := numeric.Float(req.TauxAnnuel, model.DefaultAnnualRate)

	var fields []string
	if montant <= 0 {
		fields = append(fields, "montant_credit")
	}
	if duree <= 0 {
		fields = append(fields, "duree_credit")
	}
	if len(fields) > 0 {
		return dto.SimulateCreditResponse{}, model.NewValidationError(
			"Champs crédit manquants ou invalides", fields...,
		)
	}

	installment := model.MonthlyInstallment(montant, duree, taux)
	coutTotal := roundTo(installment*float64(duree), 2)

	resp := dto.SimulateCreditResponse{
		Montant:        montant,
		DureeMois:      duree,
		TauxAnnuel:     taux,
		Mensualite:     roundTo(installment, 2),
		CoutTotal:      coutTotal,
		InteretsTotaux: roundTo(coutTotal-montant, 2),
	}

	if income := numeric.Float(req.RevenuMensuel, 0); income > 0 {
		kpis := model.ComputeKPIs(
			income,
			numeric.Float(req.ChargesMensuelles, 0),
			numeric.Float(req.CreditsEnCours, 0),
			installment,
		)
		kpiResp := toKPIResponse(kpis)
		resp.KPIs = &kpiResp
	}

	if numeric.Bool(req.WithSchedule, false) {
		schedule := model.AmortizationSchedule(montant, duree, taux)
		resp.Echeancier = make([]dto.ScheduleEntryResponse, 0, len(schedule))
		for _, entry := range schedule {
			resp.Echeancier = append(resp.Echeancier, dto.ScheduleEntryResponse{
				Periode:        entry.Period,
				Principal:      entry.Principal.InexactFloat64(),
				Interets:       entry.Interest.InexactFloat64(),
				Total:          entry.Total.InexactFloat64(),
				CapitalRestant: entry.RemainingBalance.InexactFloat64(),
			})
		}
	}

	return resp, nil
}
