package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания вызова
// @Description DTO для создания вызова
type CreateIncidentRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Description   string   `json:"description,omitempty"`
	Location      string   `json:"location" validate:"required,min=1,max=255"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	EmergencyType string   `json:"emergency_type" validate:"required,oneof=fire rescue medical other"`
	Severity      string   `json:"severity" validate:"required,oneof=low medium high"`
	TargetAreaID  *string  `json:"target_area_id,omitempty" validate:"omitempty,uuid"`
	TargetGroupID *string  `json:"target_group_id,omitempty" validate:"omitempty,uuid"`
}

// SubmitResponseRequest DTO для отклика добровольца на вызов
// @Description DTO для отклика добровольца на вызов
type SubmitResponseRequest struct {
	ResponseType     string `json:"response_type" validate:"required,oneof=station direct"`
	EstimatedArrival string `json:"estimated_arrival,omitempty"`
	Notes            string `json:"notes,omitempty" validate:"max=1000"`
}

// AreaInfo DTO зоны в составе вызова
type AreaInfo struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
}

// GroupSummary DTO группы с количеством участников
type GroupSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
}

// ResponderInfo DTO отображаемых полей добровольца
type ResponderInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ResponseInfo DTO отклика на вызов
// @Description DTO отклика на вызов
type ResponseInfo struct {
	ID               uuid.UUID     `json:"id"`
	IncidentID       uuid.UUID     `json:"incident_id"`
	Responder        ResponderInfo `json:"responder"`
	ResponseType     string        `json:"response_type"`
	EstimatedArrival *time.Time    `json:"estimated_arrival,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	Status           string        `json:"status"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IncidentResponse DTO для ответа с информацией о вызове
// @Description DTO для ответа с информацией о вызове
type IncidentResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Location      string          `json:"location"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	EmergencyType string          `json:"emergency_type"`
	Severity      string          `json:"severity"`
	Status        string          `json:"status"`
	TargetArea    *AreaInfo       `json:"target_area,omitempty"`
	TargetGroup   *GroupSummary   `json:"target_group,omitempty"`
	Responses     []*ResponseInfo `json:"responses"`
	ResponseCount int             `json:"response_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Pagination DTO для данных пагинации
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ListIncidentsResponse DTO для ответа со списком вызовов
// @Description DTO для ответа со списком вызовов
type ListIncidentsResponse struct {
	Items      []*IncidentResponse `json:"items"`
	Pagination Pagination          `json:"pagination"`
}
