package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
)

// GetDefaultJustificationTypes returns the reason-code catalog seeded on a
// fresh installation. Flags are mutually exclusive per type.
func GetDefaultJustificationTypes() []justification.JustificationType {
	return []justification.JustificationType{
		{
			TimeType:      justification.TimeTypeAll,
			Justification: "Atestado médico",
			Abonable:      true,
		},
		{
			TimeType:      justification.TimeTypeAll,
			Justification: "Consulta médica",
			Abonable:      true,
		},
		{
			TimeType:      "clock_in",
			Justification: "Problema de transporte",
		},
		{
			TimeType:      "clock_out",
			Justification: "Hora extra autorizada",
		},
		{
			TimeType:      justification.TimeTypeAll,
			Justification: "Falta justificada",
			Absence:       true,
		},
		{
			TimeType:      justification.TimeTypeAll,
			Justification: "Saída antecipada",
			Discountable:  true,
		},
		{
			TimeType:      justification.TimeTypeAll,
			Justification: "Esquecimento de registro",
		},
	}
}

// SeedJustificationTypes inserts the default catalog when it is empty.
// Re-running on a populated catalog is a no-op.
func SeedJustificationTypes(ctx context.Context, repo justification.TypeRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect justification type catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, jt := range GetDefaultJustificationTypes() {
		if _, err := repo.Create(ctx, jt); err != nil {
			return fmt.Errorf("failed to seed justification type %q: %w", jt.Justification, err)
		}
	}

	slog.Info("Default justification types seeded", "count", len(GetDefaultJustificationTypes()))
	return nil
}
