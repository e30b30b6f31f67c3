package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
)

func init() {
	logx.SetOutput(io.Discard, zerolog.Disabled)
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

type memStorage struct {
	mu      sync.Mutex
	objects map[string]string
	failOn  string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string]string{}}
}

func (m *memStorage) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	if m.failOn != "" && strings.HasSuffix(key, m.failOn) {
		return "", errors.New("boom")
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = contentType
	return m.PublicURL(key), nil
}

func (m *memStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.objects, k)
	}
	return nil
}

func (m *memStorage) PublicURL(key string) string {
	return "http://blob/" + key
}

type upload struct {
	name    string
	content []byte
}

func fileHeaders(t *testing.T, uploads ...upload) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, u := range uploads {
		fw, err := mw.CreateFormFile("files", u.name)
		require.NoError(t, err)
		_, err = fw.Write(u.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(1<<20))

	return r.MultipartForm.File["files"]
}

func TestDetectType(t *testing.T) {
	req := require.New(t)

	ct, customErr := DetectType(bytes.NewReader(pngBytes), KindAvatar)
	req.Nil(customErr)
	req.Equal("image/png", ct)

	// text is fine as an attachment but not as an avatar
	_, customErr = DetectType(strings.NewReader("just some notes"), KindAvatar)
	req.NotNil(customErr)
	req.Equal(errs.ErrFileTypeInvalid, customErr.Code)

	ct, customErr = DetectType(strings.NewReader("just some notes"), KindAttachment)
	req.Nil(customErr)
	req.Equal("text/plain", ct)

	_, customErr = DetectType(bytes.NewReader([]byte("\x7fELF\x02\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00\x02\x00\x3e\x00")), KindAttachment)
	req.NotNil(customErr)
}

func TestValidateFileSize(t *testing.T) {
	require.Nil(t, ValidateFileSize(MaxAttachmentSize))
	require.Equal(t, errs.ErrFileSizeTooLarge, ValidateFileSize(MaxAttachmentSize+1).Code)
	require.Equal(t, errs.ErrFileRequired, ValidateFileSize(0).Code)
}

func TestUploadFiles(t *testing.T) {
	req := require.New(t)
	svc := newMemStorage()

	files := fileHeaders(t,
		upload{name: "a.PNG", content: pngBytes},
		upload{name: "notes.txt", content: []byte("hello")},
	)

	atts, customErr := UploadFiles(context.Background(), svc, KindAttachment, files)
	req.Nil(customErr)
	req.Len(atts, 2)

	req.True(strings.HasPrefix(atts[0].PublicID, "attachments/"))
	req.True(strings.HasSuffix(atts[0].PublicID, ".png"))
	req.Equal(svc.PublicURL(atts[0].PublicID), atts[0].URL)
	req.Equal("image/png", svc.objects[atts[0].PublicID])
	req.Equal("text/plain", svc.objects[atts[1].PublicID])
}

func TestUploadFiles_RollsBackOnFailure(t *testing.T) {
	req := require.New(t)
	svc := newMemStorage()
	svc.failOn = ".gif"

	files := fileHeaders(t,
		upload{name: "ok.png", content: pngBytes},
		upload{name: "bad.gif", content: []byte("GIF89a" + strings.Repeat("\x00", 32))},
	)

	_, customErr := UploadFiles(context.Background(), svc, KindAvatar, files)
	req.NotNil(customErr)
	req.Equal(errs.ErrFileStorageFailed, customErr.Code)
	req.Empty(svc.objects)
}
