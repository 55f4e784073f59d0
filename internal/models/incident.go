package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyType - тип происшествия
type EmergencyType string

const (
	EmergencyFire    EmergencyType = "fire"
	EmergencyRescue  EmergencyType = "rescue"
	EmergencyMedical EmergencyType = "medical"
	EmergencyOther   EmergencyType = "other"
)

func (t EmergencyType) Valid() bool {
	switch t {
	case EmergencyFire, EmergencyRescue, EmergencyMedical, EmergencyOther:
		return true
	}
	return false
}

// Severity - уровень срочности вызова
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// IncidentStatus - статус жизненного цикла вызова
type IncidentStatus string

const (
	IncidentActive    IncidentStatus = "active"
	IncidentCompleted IncidentStatus = "completed"
	IncidentCancelled IncidentStatus = "cancelled"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentActive, IncidentCompleted, IncidentCancelled:
		return true
	}
	return false
}

// Incident представляет вызов на экстренный выезд
type Incident struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Location      string         `json:"location"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	EmergencyType EmergencyType  `json:"emergency_type"`
	Severity      Severity       `json:"severity"`
	Status        IncidentStatus `json:"status"`
	TargetAreaID  *uuid.UUID     `json:"target_area_id,omitempty"`
	TargetGroupID *uuid.UUID     `json:"target_group_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`

	// Связанные данные, заполняются репозиторием при выборке
	TargetArea    *Area       `json:"target_area,omitempty"`
	TargetGroup   *GroupInfo  `json:"target_group,omitempty"`
	Responses     []*Response `json:"responses,omitempty"`
	ResponseCount int         `json:"response_count"`
}

// IncidentFilter - типизированный фильтр для выборки вызовов.
// nil-поле означает отсутствие условия, условия объединяются по AND.
type IncidentFilter struct {
	Status  *IncidentStatus
	GroupID *uuid.UUID
}
