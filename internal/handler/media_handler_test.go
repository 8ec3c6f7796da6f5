package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blabla/messaging-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMediaRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewMediaHandler(service.NewMediaService(nil))
	router.POST("/api/v1/media/upload", func(c *gin.Context) {
		if authenticated {
			c.Set("userID", "alice")
		}
	}, h.Upload)
	return router
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte("payload"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMediaUploadHandler_UnsupportedFormatIs400(t *testing.T) {
	router := newMediaRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "payload.bin"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaUploadHandler_StorageFailureIs500(t *testing.T) {
	// Valid image, but the service has no storage behind it: the failure is
	// the server's, not the client's.
	router := newMediaRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "photo.jpg"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMediaUploadHandler_MissingFileIs400(t *testing.T) {
	router := newMediaRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaUploadHandler_Unauthenticated(t *testing.T) {
	router := newMediaRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "photo.jpg"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
