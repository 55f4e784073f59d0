package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
)

// DirectoryRepository читает справочные данные: зоны, группы и добровольцев.
// Все выборки возвращают (nil, nil), если записи нет.
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(db *pgxpool.Pool) service.DirectoryRepository {
	return &DirectoryRepository{
		db: db,
	}
}

// FindArea возвращает зону по её UUID
func (r *DirectoryRepository) FindArea(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	area := &models.Area{}
	query := `
		SELECT id, name, group_id
		FROM areas
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&area.ID, &area.Name, &area.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find area: %w", err)
	}
	return area, nil
}

// FindGroup возвращает группу с количеством участников
func (r *DirectoryRepository) FindGroup(ctx context.Context, id uuid.UUID) (*models.GroupInfo, error) {
	group := &models.GroupInfo{}
	query := `
		SELECT g.id, g.name, (SELECT COUNT(*) FROM responders m WHERE m.group_id = g.id)
		FROM groups g
		WHERE g.id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&group.ID, &group.Name, &group.MemberCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}

// FindResponder возвращает добровольца по его UUID
func (r *DirectoryRepository) FindResponder(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	responder := &models.Responder{}
	query := `
		SELECT id, name, group_id
		FROM responders
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&responder.ID, &responder.Name, &responder.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find responder: %w", err)
	}
	return responder, nil
}

// GroupMemberIDs возвращает идентификаторы участников группы
func (r *DirectoryRepository) GroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM responders
		WHERE group_id = $1;
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan group member row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error group member iteration: %w", err)
	}
	return ids, nil
}
