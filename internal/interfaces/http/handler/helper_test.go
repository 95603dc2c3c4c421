package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	storeapp "github.com/jkhopkins39/sxnctuary/internal/application/store"
	"github.com/jkhopkins39/sxnctuary/internal/application/upload"
	domainstore "github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/persistence"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/handler"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeHost struct {
	calls []string
	err   error
}

func (h *fakeHost) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	h.calls = append(h.calls, filename)
	if h.err != nil {
		return "", h.err
	}
	return "https://cdn.example.com/" + filename, nil
}

type testAPI struct {
	engine *gin.Engine
	host   *fakeHost
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domainstore.Product{}, &domainstore.Content{}))

	host := &fakeHost{}
	engine := gin.New()
	router.NewRouter(engine).
		Register(handler.NewProductHandler(storeapp.NewProductService(persistence.NewGormProductRepository(db)))).
		Register(handler.NewContentHandler(storeapp.NewContentService(persistence.NewGormContentRepository(db)))).
		Register(handler.NewUploadHandler(upload.NewService(host, upload.DefaultLimits()))).
		Setup()

	return &testAPI{engine: engine, host: host}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) doRaw(t *testing.T, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// multipartBody builds a multipart request body with files under the
// "images" field.
func multipartBody(t *testing.T, files ...multipartFile) (string, []byte) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType(), body.Bytes()
}

type multipartFile struct {
	name        string
	contentType string
	content     []byte
}

var errHostDown = errors.New("host unavailable")
