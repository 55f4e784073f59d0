package models

import "github.com/google/uuid"

// Справочные сущности. Для этого сервиса они только читаются:
// их жизненным циклом управляет внешняя система.

// Area - географическая зона, принадлежащая не более чем одной группе
type Area struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
}

// Group - группа добровольцев, цель маршрутизации вызова
type Group struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GroupInfo - группа с количеством участников для отображения в списках
type GroupInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
}

// Responder - доброволец; может не состоять ни в одной группе
type Responder struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
}

// Session - результат работы внешнего сервиса аутентификации,
// сопоставленный Bearer-токену
type Session struct {
	ResponderID uuid.UUID `json:"responder_id"`
	Role        string    `json:"role"`
}
