package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Title:         dto.Title,
		Description:   dto.Description,
		Location:      dto.Location,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		EmergencyType: models.EmergencyType(dto.EmergencyType),
		Severity:      models.Severity(dto.Severity),
	}
	// UUID уже проверены валидатором, ошибки разбора здесь невозможны
	if dto.TargetAreaID != nil {
		if id, err := uuid.Parse(*dto.TargetAreaID); err == nil {
			incident.TargetAreaID = &id
		}
	}
	if dto.TargetGroupID != nil {
		if id, err := uuid.Parse(*dto.TargetGroupID); err == nil {
			incident.TargetGroupID = &id
		}
	}
	return incident
}

// ModelToResponseInfo преобразует доменную модель отклика в DTO
func ModelToResponseInfo(model *models.Response) *ResponseInfo {
	return &ResponseInfo{
		ID:         model.ID,
		IncidentID: model.IncidentID,
		Responder: ResponderInfo{
			ID:   model.ResponderID,
			Name: model.ResponderName,
		},
		ResponseType:     string(model.ResponseType),
		EstimatedArrival: model.EstimatedArrival,
		Notes:            model.Notes,
		Status:           string(model.Status),
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelToIncidentResponse преобразует доменную модель вызова в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		Location:      model.Location,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		EmergencyType: string(model.EmergencyType),
		Severity:      string(model.Severity),
		Status:        string(model.Status),
		ResponseCount: model.ResponseCount,
		CreatedAt:     model.CreatedAt,
	}

	if model.TargetArea != nil {
		resp.TargetArea = &AreaInfo{
			ID:      model.TargetArea.ID,
			Name:    model.TargetArea.Name,
			GroupID: model.TargetArea.GroupID,
		}
	}
	if model.TargetGroup != nil {
		resp.TargetGroup = &GroupSummary{
			ID:          model.TargetGroup.ID,
			Name:        model.TargetGroup.Name,
			MemberCount: model.TargetGroup.MemberCount,
		}
	}

	resp.Responses = make([]*ResponseInfo, len(model.Responses))
	for i, response := range model.Responses {
		resp.Responses[i] = ModelToResponseInfo(response)
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
