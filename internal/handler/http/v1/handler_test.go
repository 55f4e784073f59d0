package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_callout_system/internal/models"
	"github.com/shenikar/emergency_callout_system/internal/service"
	"github.com/shenikar/emergency_callout_system/internal/handler/http/v1/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockIncidentService, *mocks.MockResponseService, *mocks.MockSessionStore, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentService := mocks.NewMockIncidentService(ctrl)
	responseService := mocks.NewMockResponseService(ctrl)
	sessionStore := mocks.NewMockSessionStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(incidentService, responseService, sessionStore, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return incidentService, responseService, sessionStore, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIncident_Success(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Title:         "Fire at the mill",
		Location:      "Mill street 3",
		EmergencyType: "fire",
		Severity:      "high",
	}

	incidentService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Status = models.IncidentActive
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.Equal(t, "active", resp.Status)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)

	incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует Title
		Location:      "Mill street 3",
		EmergencyType: "fire",
		Severity:      "high",
	}

	incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateIncident_UnknownEmergencyType(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:         "Flooded basement",
		Location:      "River road 1",
		EmergencyType: "flood",
		Severity:      "low",
	}

	incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'EmergencyType' failed on the 'oneof' tag")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:         "Fire at the mill",
		Location:      "Mill street 3",
		EmergencyType: "fire",
		Severity:      "high",
	}
	serviceError := errors.New("failed to create incident in service")

	incidentService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	groupID := uuid.New()
	expectedIncident := &models.Incident{
		ID:            incidentID,
		Title:         "Retrieved incident",
		Location:      "Somewhere",
		EmergencyType: models.EmergencyRescue,
		Severity:      models.SeverityMedium,
		Status:        models.IncidentActive,
		TargetGroupID: &groupID,
		TargetGroup:   &models.GroupInfo{ID: groupID, Name: "First group", MemberCount: 7},
		Responses: []*models.Response{
			{ID: uuid.New(), IncidentID: incidentID, ResponderID: uuid.New(), ResponderName: "Ivanov", ResponseType: models.ResponseDirect, Status: models.ResponseEnroute},
		},
		ResponseCount: 1,
	}

	incidentService.EXPECT().GetIncident(gomock.Any(), incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	require.NotNil(t, resp.TargetGroup)
	assert.Equal(t, 7, resp.TargetGroup.MemberCount)
	require.Len(t, resp.Responses, 1)
	assert.Equal(t, "Ivanov", resp.Responses[0].Responder.Name)
	assert.Equal(t, 1, resp.ResponseCount)
}

func TestGetIncident_InvalidID(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)

	incidentService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentService.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("%w: incident %s", service.ErrNotFound, incidentID)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)

	items := make([]*models.Incident, 20)
	for i := range items {
		items[i] = &models.Incident{ID: uuid.New(), Title: "Incident", Status: models.IncidentActive}
	}

	incidentService.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{}, 50, 100).
		Return(&service.IncidentPage{
			Items:   items,
			Total:   120,
			Limit:   50,
			Offset:  100,
			HasMore: false,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?limit=50&offset=100", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ListIncidentsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 20)
	assert.Equal(t, 120, resp.Pagination.Total)
	assert.False(t, resp.Pagination.HasMore)
}

func TestListIncidents_StatusFilter(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)
	status := models.IncidentActive

	incidentService.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{Status: &status}, 0, 0).
		Return(&service.IncidentPage{Items: []*models.Incident{}, Limit: 50}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=active", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_InvalidStatus(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)

	incidentService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status filter")
}

func TestListIncidents_NonNumericLimit(t *testing.T) {
	incidentService, _, _, router := newTestHandler(t)

	incidentService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?limit=fifty", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "limit must be a number")
}

func TestSubmitResponse_Success(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)
	incidentID := uuid.New()
	responderID := uuid.New()
	responseID := uuid.New()

	sessionStore.EXPECT().
		Resolve(gomock.Any(), "valid-token").
		Return(&models.Session{ResponderID: responderID, Role: "member"}, nil).
		Times(1)

	responseService.EXPECT().
		SubmitResponse(gomock.Any(), incidentID, responderID, gomock.Any()).
		Return(&models.Response{
			ID:            responseID,
			IncidentID:    incidentID,
			ResponderID:   responderID,
			ResponderName: "Ivanov",
			ResponseType:  models.ResponseDirect,
			Status:        models.ResponseEnroute,
			UpdatedAt:     time.Now(),
		}, nil).
		Times(1)

	body := bytes.NewBufferString(`{"response_type": "direct", "notes": "on my way"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", incidentID), body, map[string]string{"X-Session-Token": "valid-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ResponseInfo
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, responseID, resp.ID)
	assert.Equal(t, "Ivanov", resp.Responder.Name)
	assert.Equal(t, "enroute", resp.Status)
}

func TestSubmitResponse_MissingToken(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)

	sessionStore.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	responseService.EXPECT().SubmitResponse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewBufferString(`{"response_type": "direct"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", uuid.New()), body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestSubmitResponse_UnknownToken(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)

	sessionStore.EXPECT().Resolve(gomock.Any(), "stale-token").Return(nil, nil).Times(1)
	responseService.EXPECT().SubmitResponse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewBufferString(`{"response_type": "direct"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", uuid.New()), body, map[string]string{"Authorization": "Bearer stale-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestSubmitResponse_UnknownResponseType(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)
	responderID := uuid.New()

	sessionStore.EXPECT().
		Resolve(gomock.Any(), "valid-token").
		Return(&models.Session{ResponderID: responderID}, nil).
		Times(1)

	// До сервиса дело не доходит, записи не происходит
	responseService.EXPECT().SubmitResponse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewBufferString(`{"response_type": "teleport"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", uuid.New()), body, map[string]string{"X-Session-Token": "valid-token"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ResponseType' failed on the 'oneof' tag")
}

func TestSubmitResponse_Forbidden(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)
	incidentID := uuid.New()
	responderID := uuid.New()

	sessionStore.EXPECT().
		Resolve(gomock.Any(), "valid-token").
		Return(&models.Session{ResponderID: responderID}, nil).
		Times(1)

	responseService.EXPECT().
		SubmitResponse(gomock.Any(), incidentID, responderID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: responder is not a member of the incident's target group", service.ErrForbidden)).
		Times(1)

	body := bytes.NewBufferString(`{"response_type": "station"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", incidentID), body, map[string]string{"X-Session-Token": "valid-token"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubmitResponse_IncidentNotFound(t *testing.T) {
	_, responseService, sessionStore, router := newTestHandler(t)
	incidentID := uuid.New()
	responderID := uuid.New()

	sessionStore.EXPECT().
		Resolve(gomock.Any(), "valid-token").
		Return(&models.Session{ResponderID: responderID}, nil).
		Times(1)

	responseService.EXPECT().
		SubmitResponse(gomock.Any(), incidentID, responderID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: incident %s", service.ErrNotFound, incidentID)).
		Times(1)

	body := bytes.NewBufferString(`{"response_type": "station"}`)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/response", incidentID), body, map[string]string{"X-Session-Token": "valid-token"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
