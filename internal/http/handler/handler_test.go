package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docuagent/internal/model"
	"docuagent/internal/service"
	serviceMocks "docuagent/internal/service/mocks"
)

func multipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "dependency unavailable", body.Detail)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProcessDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Post("/process-document", ProcessDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, contentType := multipartFile(t, "test.txt", []byte("hello world"))

		expectedDoc := &model.Document{ID: uuid.New().String(), Filename: "test.txt"}
		mockSvc.On("Process", mock.Anything, "test.txt", []byte("hello world")).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/process-document", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Message string         `json:"message"`
			Data    model.Document `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "Document processed successfully", result.Message)
		assert.Equal(t, expectedDoc.ID, result.Data.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process-document", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "file is required", res.Detail)
	})

	t.Run("empty file", func(t *testing.T) {
		body, contentType := multipartFile(t, "empty.txt", nil)

		mockSvc.On("Process", mock.Anything, "empty.txt", mock.Anything).Return(nil, service.ErrEmptyFile).Once()

		req := httptest.NewRequest(http.MethodPost, "/process-document", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "uploaded file is empty", res.Detail)
		mockSvc.AssertExpectations(t)
	})

	t.Run("pipeline error", func(t *testing.T) {
		body, contentType := multipartFile(t, "test.txt", []byte("hello"))

		mockSvc.On("Process", mock.Anything, "test.txt", mock.Anything).Return(nil, errors.New("pipeline failed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/process-document", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success returns bare array", func(t *testing.T) {
		docs := []model.Document{{ID: uuid.New().String(), Filename: "test.pdf"}}
		mockSvc.On("List", mock.Anything, 5).Return(docs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?limit=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 1)
		assert.Equal(t, docs[0].ID, result[0].ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no limit means all", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0).Return([]model.Document{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "invalid limit", body.Detail)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Document{ID: id, Filename: "test.txt"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "document not found", res.Detail)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents/invalid-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "invalid id format", res.Detail)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDownloadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/documents/download/:id", DownloadDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Download", mock.Anything, id).Return(&service.DownloadResult{
			Filename:    "report.pdf",
			ContentType: "application/pdf",
			Size:        4,
			Content:     io.NopCloser(strings.NewReader("%PDF")),
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/download/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="report.pdf"`, resp.Header.Get("Content-Disposition"))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF", string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Download", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/download/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Document deleted successfully", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRiskHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/risks", ListRisks(mockSvc))
	app.Get("/risks/:id", GetRisk(mockSvc))
	app.Patch("/risks/:id", UpdateRiskStatus(mockSvc))

	t.Run("list", func(t *testing.T) {
		reports := []model.RiskReport{{ID: uuid.New().String(), Title: "contract.pdf"}}
		mockSvc.On("ListRisks", mock.Anything, 0).Return(reports, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/risks", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.RiskReport
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 1)
		assert.Equal(t, "contract.pdf", result[0].Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("get not found for clean document", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("GetRisk", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/risks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "risk report not found", res.Detail)
		mockSvc.AssertExpectations(t)
	})

	t.Run("patch status", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("UpdateRiskStatus", mock.Anything, id, model.RiskStatusResolved).
			Return(&model.RiskReport{ID: id, Status: model.RiskStatusResolved}, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/risks/"+id,
			strings.NewReader(`{"status":"Resolved"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.RiskReport
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.RiskStatusResolved, result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("patch invalid status", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("UpdateRiskStatus", mock.Anything, id, "archived").
			Return(nil, service.ErrInvalidStatus).Once()

		req := httptest.NewRequest(http.MethodPatch, "/risks/"+id,
			strings.NewReader(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "invalid status", res.Detail)
		mockSvc.AssertExpectations(t)
	})

	t.Run("patch malformed body", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPatch, "/risks/"+id, strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDashboardStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/stats/dashboard", DashboardStats(mockSvc))

	mockSvc.On("Dashboard", mock.Anything).Return(&model.DashboardStats{
		DocumentsProcessed:    4,
		RiskyDocuments:        1,
		AverageProcessingTime: "1.2s",
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/stats/dashboard", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.DashboardStats
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 4, result.DocumentsProcessed)
	assert.Equal(t, "1.2s", result.AverageProcessingTime)
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockService)
	app := fiber.New()
	app.Get("/settings", GetSettings(mockSvc))
	app.Put("/settings", UpdateSettings(mockSvc))

	t.Run("get", func(t *testing.T) {
		mockSvc.On("GetSettings").Return(model.Settings{
			Endpoint:             "http://localhost:8080",
			NotificationsEnabled: true,
			RiskThreshold:        0.4,
			RetentionDays:        90,
		}).Once()

		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Settings
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 90, result.RetentionDays)
		mockSvc.AssertExpectations(t)
	})

	t.Run("put merges and echoes", func(t *testing.T) {
		mockSvc.On("UpdateSettings", map[string]any{"retentionDays": float64(30)}).
			Return(model.Settings{RetentionDays: 30}).Once()

		req := httptest.NewRequest(http.MethodPut, "/settings",
			strings.NewReader(`{"retentionDays":30}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Settings
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 30, result.RetentionDays)
		mockSvc.AssertExpectations(t)
	})

	t.Run("put malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockService)
	RegisterRoutes(app, nil, mockSvc)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "resource not found", res.Detail)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "method not allowed", res.Detail)
	})

	t.Run("download route not shadowed by id route", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Download", mock.Anything, id).Return(&service.DownloadResult{
			Filename:    "a.txt",
			ContentType: "text/plain; charset=utf-8",
			Size:        2,
			Content:     io.NopCloser(strings.NewReader("hi")),
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/download/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
