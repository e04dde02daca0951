package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apierrors "github.com/jineuihong-coder/iso-findings/internal/errors"
	"github.com/jineuihong-coder/iso-findings/internal/services"
)

type statusResponse struct {
	Status string                  `json:"status"`
	Data   services.SnapshotStatus `json:"data"`
}

// multipartUpload builds a multipart body with a single "file" part.
func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func sampleWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "findings"))
	grid := [][]string{
		{"clause", "subclause", "category", "content"},
		{"7", "7.1", "부적합", "자원 충분성 미확보"},
	}
	for r, cells := range grid {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("findings", cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func postUpload(t *testing.T, router chi.Router, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/workbook", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWorkbookUpload(t *testing.T) {
	router := newTestRouter(t)

	rec := postUpload(t, router, "audit.xlsx", sampleWorkbook(t))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "audit.xlsx", resp.Data.Source)
	assert.Equal(t, 1, resp.Data.Rows)
	assert.Equal(t, 6, resp.Data.Standards, "single-sheet upload falls back to the built-in standards")
}

func TestWorkbookUpload_WrongExtension(t *testing.T) {
	router := newTestRouter(t)

	rec := postUpload(t, router, "audit.csv", []byte("clause,content\n7,x\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, apierrors.TypeValidation, problem["type"])
}

func TestWorkbookUpload_MissingFilePart(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/workbook", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkbookUpload_CorruptWorkbook(t *testing.T) {
	router := newTestRouter(t)

	rec := postUpload(t, router, "broken.xlsx", []byte("not really an xlsx"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, apierrors.TypeWorkbook, problem["type"])
}

func TestWorkbookStatusAndReset(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, postUpload(t, router, "audit.xlsx", sampleWorkbook(t)).Code)

	rec := doRequest(t, router, http.MethodGet, "/api/workbook", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "audit.xlsx", resp.Data.Source)

	rec = doRequest(t, router, http.MethodDelete, "/api/workbook", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, services.DefaultSource, resp.Data.Source)
	assert.Equal(t, 6, resp.Data.Rows)
}
