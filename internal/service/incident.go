package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/config"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/notifier"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// IncidentRepository определяет контракт для работы с бд вызовов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter, limit, offset int) ([]*models.Incident, int, error)
}

// DirectoryRepository определяет контракт для чтения справочных данных
// (зоны, группы, добровольцы). Отсутствие записи - это (nil, nil), не ошибка.
type DirectoryRepository interface {
	FindArea(ctx context.Context, id uuid.UUID) (*models.Area, error)
	FindGroup(ctx context.Context, id uuid.UUID) (*models.GroupInfo, error)
	FindResponder(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	GroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

// IncidentPage - страница списка вызовов с данными для пагинации
type IncidentPage struct {
	Items   []*models.Incident
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// IncidentService определяет контракт для бизнес-логики диспетчеризации вызовов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter, limit, offset int) (*IncidentPage, error)
}

type incidentService struct {
	repo      IncidentRepository
	directory DirectoryRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notifier.CallOutPublisher
}

func NewIncidentService(repo IncidentRepository, directory DirectoryRepository, logger *logrus.Logger, cfg *config.Config, publisher notifier.CallOutPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		directory: directory,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// resolveTarget определяет целевую группу вызова. Явно указанная группа
// всегда побеждает; иначе берется группа-владелец зоны. Отсутствующая зона
// или зона без группы - не ошибка, вызов создается без целевой группы.
// Вызывается ровно один раз при создании, результат сохраняется и
// впоследствии не пересчитывается.
func (s *incidentService) resolveTarget(ctx context.Context, explicitGroupID, areaID *uuid.UUID) (*uuid.UUID, error) {
	if explicitGroupID != nil {
		return explicitGroupID, nil
	}

	if areaID == nil {
		return nil, nil
	}

	area, err := s.directory.FindArea(ctx, *areaID)
	if err != nil {
		return nil, fmt.Errorf("service: could not look up area: %w", err)
	}
	if area == nil || area.GroupID == nil {
		return nil, nil
	}
	return area.GroupID, nil
}

// CreateIncident создает вызов: валидирует поля, один раз определяет целевую
// группу, сохраняет вызов со статусом active и ставит оповещение участников
// группы в очередь. Сбой постановки в очередь логируется и не отменяет создание.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := validateIncidentInput(incident); err != nil {
		log.WithError(err).Warn("Incident input validation failed")
		return err
	}

	targetGroupID, err := s.resolveTarget(ctx, incident.TargetGroupID, incident.TargetAreaID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve target group")
		return err
	}
	incident.TargetGroupID = targetGroupID
	incident.Status = models.IncidentActive

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.enrichCreated(ctx, incident, log)

	if incident.TargetGroupID != nil {
		s.notifyGroup(ctx, incident, log)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// validateIncidentInput проверяет обязательные поля и закрытые перечисления
func validateIncidentInput(incident *models.Incident) error {
	if incident.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if incident.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if !incident.EmergencyType.Valid() {
		return fmt.Errorf("%w: unknown emergency type %q", ErrValidation, incident.EmergencyType)
	}
	if !incident.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrValidation, incident.Severity)
	}
	return nil
}

// enrichCreated подтягивает зону и группу для немедленного отображения.
// Ошибки справочника здесь не фатальны: вызов уже создан.
func (s *incidentService) enrichCreated(ctx context.Context, incident *models.Incident, log *logrus.Entry) {
	if incident.TargetAreaID != nil {
		area, err := s.directory.FindArea(ctx, *incident.TargetAreaID)
		if err != nil {
			log.WithError(err).Warn("Failed to load target area for response")
		} else {
			incident.TargetArea = area
		}
	}
	if incident.TargetGroupID != nil {
		group, err := s.directory.FindGroup(ctx, *incident.TargetGroupID)
		if err != nil {
			log.WithError(err).Warn("Failed to load target group for response")
		} else {
			incident.TargetGroup = group
		}
	}
}

// notifyGroup ставит оповещение участников целевой группы в исходящую очередь.
// Доставка - best-effort: её сбой никогда не виден создателю вызова.
func (s *incidentService) notifyGroup(ctx context.Context, incident *models.Incident, log *logrus.Entry) {
	memberIDs, err := s.directory.GroupMemberIDs(ctx, *incident.TargetGroupID)
	if err != nil {
		log.WithError(err).Error("Failed to enumerate group members for call-out")
		return
	}

	event := notifier.CallOutEvent{
		IncidentID:    incident.ID,
		Title:         incident.Title,
		Location:      incident.Location,
		EmergencyType: string(incident.EmergencyType),
		Severity:      string(incident.Severity),
		GroupID:       *incident.TargetGroupID,
		MemberIDs:     memberIDs,
		CreatedAt:     incident.CreatedAt,
	}
	if incident.TargetGroup != nil {
		event.GroupName = incident.TargetGroup.Name
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to enqueue call-out notification")
		return
	}
	log.WithField("member_count", len(memberIDs)).Info("Call-out notification enqueued")
}

// GetIncident возвращает вызов по ID со связанными данными
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident == nil {
		log.Warn("Incident not found")
		return nil, fmt.Errorf("%w: incident %s", ErrNotFound, id)
	}

	return incident, nil
}

// ListIncidents возвращает отфильтрованный список вызовов с пагинацией.
// Сортировка по убыванию created_at держит уже выданные страницы на месте
// при конкурентных вставках.
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter, limit, offset int) (*IncidentPage, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"limit":   limit,
		"offset":  offset,
	})
	log.Info("Listing incidents")

	incidents, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	page := &IncidentPage{
		Items:  incidents,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		// Считается от total, а не от числа возвращенных строк: запрос
		// страницы за концом списка дает HasMore=false, а не ошибку
		HasMore: offset+limit < total,
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return page, nil
}
