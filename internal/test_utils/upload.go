package test_utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewUploadRequest builds a multipart/form-data request carrying content as the
// file stored under field.
func NewUploadRequest(t *testing.T, target string, field string, filename string, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// SampleTaskLog is the three-task log used across handler tests.
const SampleTaskLog = "Task Name,Start Time,End Time\n" +
	"Work Meeting,2024-01-01T09:00,2024-01-01T10:30\n" +
	"Study Session,2024-01-01T11:00,2024-01-01T12:00\n" +
	"Lunch Break,2024-01-01T12:00,2024-01-01T12:30\n"
