package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create создает новую запись о вызове в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (title, description, location, latitude, longitude, emergency_type, severity, status, target_area_id, target_group_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.Location,
		incident.Latitude,
		incident.Longitude,
		incident.EmergencyType,
		incident.Severity,
		incident.Status,
		incident.TargetAreaID,
		incident.TargetGroupID,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// incidentColumns - общая часть выборки вызова со связанными зоной и группой.
// member_count считается подзапросом по справочнику добровольцев.
const incidentColumns = `
	i.id,
	i.title,
	i.description,
	i.location,
	i.latitude,
	i.longitude,
	i.emergency_type,
	i.severity,
	i.status,
	i.target_area_id,
	i.target_group_id,
	i.created_at,
	a.name,
	a.group_id,
	g.name,
	(SELECT COUNT(*) FROM responders m WHERE m.group_id = g.id)
`

const incidentJoins = `
	FROM incidents i
	LEFT JOIN areas a ON a.id = i.target_area_id
	LEFT JOIN groups g ON g.id = i.target_group_id
`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var (
		areaName    *string
		areaGroupID *uuid.UUID
		groupName   *string
		memberCount *int
	)
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Location,
		&incident.Latitude,
		&incident.Longitude,
		&incident.EmergencyType,
		&incident.Severity,
		&incident.Status,
		&incident.TargetAreaID,
		&incident.TargetGroupID,
		&incident.CreatedAt,
		&areaName,
		&areaGroupID,
		&groupName,
		&memberCount,
	)
	if err != nil {
		return nil, err
	}

	if incident.TargetAreaID != nil && areaName != nil {
		incident.TargetArea = &models.Area{
			ID:      *incident.TargetAreaID,
			Name:    *areaName,
			GroupID: areaGroupID,
		}
	}
	if incident.TargetGroupID != nil && groupName != nil {
		info := &models.GroupInfo{
			ID:   *incident.TargetGroupID,
			Name: *groupName,
		}
		if memberCount != nil {
			info.MemberCount = *memberCount
		}
		incident.TargetGroup = info
	}
	return incident, nil
}

// GetByID возвращает вызов по его UUID со связанными данными,
// (nil, nil) если вызов не найден
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := "SELECT " + incidentColumns + incidentJoins + " WHERE i.id = $1;"

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	if err := r.attachResponses(ctx, []*models.Incident{incident}); err != nil {
		return nil, err
	}
	return incident, nil
}

// List возвращает отфильтрованный список вызовов, отсортированный по убыванию
// created_at, и общее число строк под тем же фильтром
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter, limit, offset int) ([]*models.Incident, int, error) {
	where, args := buildIncidentFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM incidents i " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d;",
		incidentColumns, incidentJoins, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}

	if err := r.attachResponses(ctx, incidents); err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// buildIncidentFilter собирает WHERE из типизированного фильтра,
// условия объединяются по AND
func buildIncidentFilter(filter models.IncidentFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		conds = append(conds, fmt.Sprintf("i.target_group_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// attachResponses подгружает отклики с именами добровольцев для набора вызовов
func (r *IncidentRepository) attachResponses(ctx context.Context, incidents []*models.Incident) error {
	if len(incidents) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Incident, len(incidents))
	ids := make([]uuid.UUID, 0, len(incidents))
	for _, incident := range incidents {
		incident.Responses = make([]*models.Response, 0)
		byID[incident.ID] = incident
		ids = append(ids, incident.ID)
	}

	query := `
		SELECT
			r.id,
			r.incident_id,
			r.responder_id,
			r.response_type,
			r.estimated_arrival,
			r.notes,
			r.status,
			r.updated_at,
			p.name
		FROM responses r
		JOIN responders p ON p.id = r.responder_id
		WHERE r.incident_id = ANY($1)
		ORDER BY r.updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load incident responses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		response := &models.Response{}
		err := rows.Scan(
			&response.ID,
			&response.IncidentID,
			&response.ResponderID,
			&response.ResponseType,
			&response.EstimatedArrival,
			&response.Notes,
			&response.Status,
			&response.UpdatedAt,
			&response.ResponderName,
		)
		if err != nil {
			return fmt.Errorf("failed to scan response row: %w", err)
		}
		if incident, ok := byID[response.IncidentID]; ok {
			incident.Responses = append(incident.Responses, response)
			incident.ResponseCount++
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error response iteration: %w", err)
	}
	return nil
}
