package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseType - способ прибытия добровольца
type ResponseType string

const (
	ResponseStation ResponseType = "station" // через депо
	ResponseDirect  ResponseType = "direct"  // напрямую к месту вызова
)

func (t ResponseType) Valid() bool {
	switch t {
	case ResponseStation, ResponseDirect:
		return true
	}
	return false
}

// ResponseStatus - статус отклика. Ядро выставляет только enroute,
// дальнейшие статусы принадлежат внешнему процессу.
type ResponseStatus string

const (
	ResponseEnroute ResponseStatus = "enroute"
)

// Response представляет отклик добровольца на вызов.
// Пара (IncidentID, ResponderID) уникальна: повторная отправка
// перезаписывает существующую запись, а не добавляет новую.
type Response struct {
	ID               uuid.UUID      `json:"id"`
	IncidentID       uuid.UUID      `json:"incident_id"`
	ResponderID      uuid.UUID      `json:"responder_id"`
	ResponseType     ResponseType   `json:"response_type"`
	EstimatedArrival *time.Time     `json:"estimated_arrival,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	Status           ResponseStatus `json:"status"`
	UpdatedAt        time.Time      `json:"updated_at"`

	// Отображаемые поля добровольца, чтобы клиенту не требовался отдельный запрос
	ResponderName string `json:"responder_name"`
}
