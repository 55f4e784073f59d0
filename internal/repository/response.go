package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
)

type ResponseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) service.ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// Upsert атомарно создает или перезаписывает отклик по паре
// (incident_id, responder_id). Один оператор с ON CONFLICT: конкурентные
// отправки одной пары не могут породить две строки, побеждает последняя
// зафиксированная. При preserveStatus существующая строка сохраняет свой
// текущий статус, иначе статус принудительно возвращается к переданному.
func (r *ResponseRepository) Upsert(ctx context.Context, response *models.Response, preserveStatus bool) error {
	statusExpr := "EXCLUDED.status"
	if preserveStatus {
		statusExpr = "responses.status"
	}

	query := fmt.Sprintf(`
		INSERT INTO responses (incident_id, responder_id, response_type, estimated_arrival, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (incident_id, responder_id) DO UPDATE SET
			response_type = EXCLUDED.response_type,
			estimated_arrival = EXCLUDED.estimated_arrival,
			notes = EXCLUDED.notes,
			status = %s,
			updated_at = NOW()
		RETURNING id, status, updated_at;
	`, statusExpr)

	err := r.db.QueryRow(ctx, query,
		response.IncidentID,
		response.ResponderID,
		response.ResponseType,
		response.EstimatedArrival,
		response.Notes,
		response.Status,
	).Scan(&response.ID, &response.Status, &response.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}
