package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/config"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ResponseRepository определяет контракт для журнала откликов.
// Upsert атомарен относительно уникальности (incident_id, responder_id):
// конкурентные отправки одной пары не порождают двух строк, побеждает
// последняя зафиксированная.
type ResponseRepository interface {
	Upsert(ctx context.Context, response *models.Response, preserveStatus bool) error
}

// SubmitResponseInput - проверяемые поля отклика. EstimatedArrival приходит
// строкой и разбирается здесь: некорректная метка времени - ошибка
// валидации, а не молчаливо отброшенное значение.
type SubmitResponseInput struct {
	ResponseType     models.ResponseType
	EstimatedArrival string
	Notes            string
}

// ResponseService определяет контракт для приема откликов на вызов
type ResponseService interface {
	SubmitResponse(ctx context.Context, incidentID, responderID uuid.UUID, input SubmitResponseInput) (*models.Response, error)
}

type responseService struct {
	incidents IncidentRepository
	responses ResponseRepository
	directory DirectoryRepository
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewResponseService(incidents IncidentRepository, responses ResponseRepository, directory DirectoryRepository, logger *logrus.Logger, cfg *config.Config) ResponseService {
	return &responseService{
		incidents: incidents,
		responses: responses,
		directory: directory,
		logger:    logger,
		cfg:       cfg,
	}
}

// canRespond проверяет право добровольца откликнуться на вызов.
// Проверка выполняется заново при каждой отправке: членство в группе
// принадлежит внешней системе и может измениться в любой момент.
func canRespond(incident *models.Incident, responder *models.Responder) error {
	if incident.TargetGroupID == nil {
		// Вызов без целевой группы открыт для любого аутентифицированного добровольца
		return nil
	}
	if responder.GroupID == nil || *responder.GroupID != *incident.TargetGroupID {
		return fmt.Errorf("%w: responder is not a member of the incident's target group", ErrForbidden)
	}
	return nil
}

// SubmitResponse записывает отклик добровольца на вызов: проверяет вход,
// существование вызова и добровольца, право отклика, затем выполняет
// идемпотентный upsert по паре (incident_id, responder_id). Повторная
// отправка перезаписывает существующую запись.
func (s *responseService) SubmitResponse(ctx context.Context, incidentID, responderID uuid.UUID, input SubmitResponseInput) (*models.Response, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "response",
		"method":       "SubmitResponse",
		"incident_id":  incidentID,
		"responder_id": responderID,
	})
	log.Info("Submitting responder call-out response")

	if !input.ResponseType.Valid() {
		log.WithField("response_type", input.ResponseType).Warn("Unknown response type")
		return nil, fmt.Errorf("%w: unknown response type %q", ErrValidation, input.ResponseType)
	}

	var estimatedArrival *time.Time
	if input.EstimatedArrival != "" {
		parsed, err := time.Parse(time.RFC3339, input.EstimatedArrival)
		if err != nil {
			log.WithError(err).Warn("Unparseable estimated arrival")
			return nil, fmt.Errorf("%w: estimated_arrival must be an RFC 3339 timestamp", ErrValidation)
		}
		estimatedArrival = &parsed
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident == nil {
		log.Warn("Incident not found")
		return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
	}

	responder, err := s.directory.FindResponder(ctx, responderID)
	if err != nil {
		log.WithError(err).Error("Failed to get responder from repository")
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	if responder == nil {
		log.Warn("Responder not found")
		return nil, fmt.Errorf("%w: responder %s", ErrNotFound, responderID)
	}

	if err := canRespond(incident, responder); err != nil {
		log.Warn("Responder is not allowed to respond to this incident")
		return nil, err
	}

	response := &models.Response{
		IncidentID:       incidentID,
		ResponderID:      responderID,
		ResponseType:     input.ResponseType,
		EstimatedArrival: estimatedArrival,
		Notes:            input.Notes,
		Status:           models.ResponseEnroute,
		// Имя берем из уже загруженного добровольца, отдельный запрос не нужен
		ResponderName: responder.Name,
	}

	if err := s.responses.Upsert(ctx, response, s.cfg.ResponsePreserveStatus); err != nil {
		log.WithError(err).Error("Failed to upsert response in repository")
		return nil, fmt.Errorf("service: could not record response: %w", err)
	}

	log.WithField("response_id", response.ID).Info("Response recorded successfully")
	return response, nil
}
