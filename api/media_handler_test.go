package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-cms-backend/models"
)

func uploadRequest(t *testing.T, token, partName, filename, contentType string, content []byte, extra map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	if partName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+partName+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestMediaUploadServeAndDelete(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(uploadRequest(t, env.token, "file", "Launch Notes.TXT", "text/plain", []byte("hello uploads"), nil))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	asset := decodeBody[models.MediaAsset](t, rec)
	assert.True(t, strings.HasPrefix(asset.URL, "/uploads/launchnotes-"), asset.URL)
	assert.True(t, strings.HasSuffix(asset.Filename, ".txt"))
	assert.Equal(t, int64(len("hello uploads")), asset.Size)
	assert.Equal(t, "text/plain", asset.MimeType)

	onDisk := filepath.Join(env.uploads, asset.Filename)
	require.FileExists(t, onDisk)

	rec = env.request(http.MethodGet, asset.URL, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello uploads", rec.Body.String())

	// Directory listings stay hidden.
	assert.Equal(t, http.StatusNotFound, env.request(http.MethodGet, "/uploads/", nil, false).Code)

	rec = env.request(http.MethodGet, "/api/media", nil, true)
	require.Len(t, decodeBody[[]models.MediaAsset](t, rec), 1)

	rec = env.request(http.MethodDelete, "/api/media/"+asset.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, err := os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, http.StatusNotFound, env.request(http.MethodDelete, "/api/media/"+asset.ID.String(), nil, true).Code)
}

func TestMediaUploadUsesFilenameField(t *testing.T) {
	env := newTestEnv(t)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	req := uploadRequest(t, env.token, "file", "blob", "", png, map[string]string{"filename": "Hero Banner.png"})
	rec := env.serve(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	asset := decodeBody[models.MediaAsset](t, rec)
	assert.True(t, strings.HasPrefix(asset.Filename, "herobanner-"), asset.Filename)
	assert.Equal(t, "image/png", asset.MimeType)
}

func TestMediaUploadRejections(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(uploadRequest(t, env.token, "", "", "", nil, map[string]string{"filename": "x.png"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file", decodeBody[ErrorResponse](t, rec).Field)

	big := bytes.Repeat([]byte("a"), int(env.cfg.MaxUploadBytes)+1)
	rec = env.serve(uploadRequest(t, env.token, "file", "big.txt", "text/plain", big, nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = env.request(http.MethodGet, "/api/media", nil, true)
	assert.Empty(t, decodeBody[[]models.MediaAsset](t, rec))

	entries, err := os.ReadDir(env.uploads)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
