package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"loganalyzer/internal/model"
	serviceMocks "loganalyzer/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
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
	app := fiber.New()
	app.Get("/", HealthCheck())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "Log Analyzer API is running.", body["message"])
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadLog(t *testing.T) {
	mockSvc := new(serviceMocks.MockIngestService)
	app := fiber.New()
	app.Post("/upload", UploadLog(mockSvc))

	t.Run("admitted upload returns 201 with filename and size", func(t *testing.T) {
		body, contentType := multipartBody(t, "app.log", bytes.Repeat([]byte("x"), 100))

		mockSvc.On("Admit", mock.Anything, mock.MatchedBy(func(req model.UploadRequest) bool {
			return req.Filename == "app.log" && req.Body != nil && req.DeclaredSize > 0
		})).Return(&model.AdmissionResult{
			Admitted:  true,
			Filename:  "app.log",
			SizeBytes: 100,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result map[string]any
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "app.log", result["filename"])
		assert.Equal(t, float64(100), result["Size_in_Bytes"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid extension returns 400 naming the allowed set", func(t *testing.T) {
		body, contentType := multipartBody(t, "image.png", []byte("binary"))

		mockSvc.On("Admit", mock.Anything, mock.Anything).Return(&model.AdmissionResult{
			Filename:  "image.png",
			Rejection: model.RejectionInvalidExtension,
			Detail:    "unsupported file extension (allowed: .txt, .log, .logfile, .data)",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_EXTENSION", res.Error.Code)
		assert.Contains(t, res.Error.Message, ".logfile")
		mockSvc.AssertExpectations(t)
	})

	t.Run("declared too large returns 413", func(t *testing.T) {
		body, contentType := multipartBody(t, "big.txt", []byte("stub"))

		mockSvc.On("Admit", mock.Anything, mock.Anything).Return(&model.AdmissionResult{
			Filename:  "big.txt",
			Rejection: model.RejectionDeclaredTooLarge,
			Detail:    "File too large (max 20MB)",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "DECLARED_TOO_LARGE", res.Error.Code)
		assert.Equal(t, "File too large (max 20MB)", res.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("actual too large returns 413", func(t *testing.T) {
		body, contentType := multipartBody(t, "big.txt", []byte("stub"))

		mockSvc.On("Admit", mock.Anything, mock.Anything).Return(&model.AdmissionResult{
			Filename:  "big.txt",
			Rejection: model.RejectionActualTooLarge,
			Detail:    "File too large (max 20MB)",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		// Missing content-type and body
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_REQUIRED", res.Error.Code)
	})

	t.Run("service fault returns 500", func(t *testing.T) {
		body, contentType := multipartBody(t, "app.log", []byte("hello"))

		mockSvc.On("Admit", mock.Anything, mock.Anything).
			Return(nil, errors.New("probe upload size: seek unsupported")).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockIngestService)
	RegisterRoutes(app, mockSvc)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Upload endpoint only allows POST
		req := httptest.NewRequest(http.MethodGet, "/upload", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
