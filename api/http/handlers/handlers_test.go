package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	router "github.com/artem13815/resumefill/api/http"
	"github.com/artem13815/resumefill/api/http/handlers"
	"github.com/artem13815/resumefill/api/http/presenter"
	"github.com/artem13815/resumefill/pkg/form"
	"github.com/artem13815/resumefill/pkg/health"
	"github.com/artem13815/resumefill/pkg/llm"
	"github.com/artem13815/resumefill/pkg/resume"
)

const janeDoe = `{"fullName":"Jane Doe","email":"jane@x.io","phoneNumber":"","linkedinUrl":"","websiteUrl":"",
"summary":"Engineer","skills":["Go"],"workExperience":[{"company":"Acme","title":"Dev","startDate":"Jan 2020",
"endDate":"Present","description":"Built APIs"}],"education":[]}`

type stubModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	started chan struct{}
	release chan struct{}
}

func (m *stubModel) Generate(ctx context.Context, _ llm.Request) (string, error) {
	m.mu.Lock()
	m.calls++
	started, release := m.started, m.release
	m.mu.Unlock()
	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return m.reply, m.err
}

func (m *stubModel) Name() string { return "stub-model" }

func (m *stubModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newApp(t *testing.T, model *stubModel) *fiber.App {
	t.Helper()
	svc := resume.NewParseService(resume.NewIngestor(1<<20), resume.NewExtractor(model, nil, 0), nil)
	store := form.NewStore(0, nil)
	t.Cleanup(store.Close)

	app := fiber.New()
	app.Use(requestid.New())
	router.Register(app,
		handlers.NewHealthHandler(health.NewService(), 0),
		handlers.NewResumeHandler(svc),
		handlers.NewFormsHandler(store, svc, form.NewSubmitter(svc, nil)),
		nil,
	)
	return app
}

func uploadRequest(t *testing.T, target, filename, mediaType string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", mediaType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestParse_PDF(t *testing.T) {
	model := &stubModel{reply: janeDoe}
	app := newApp(t, model)

	resp, err := app.Test(uploadRequest(t, "/api/v1/resume/parse", "cv.pdf", resume.MediaTypePDF, []byte("%PDF-1.4")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rec := decode[resume.ResumeRecord](t, resp)
	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, "jane@x.io", rec.Email)
	assert.Equal(t, []string{"Go"}, rec.Skills)
	require.Len(t, rec.WorkExperience, 1)
	assert.Equal(t, "Present", rec.WorkExperience[0].EndDate)
	assert.Empty(t, rec.Education)
}

func TestParse_UnsupportedType(t *testing.T) {
	model := &stubModel{reply: janeDoe}
	app := newApp(t, model)

	resp, err := app.Test(uploadRequest(t, "/api/v1/resume/parse", "photo.png", "image/png", []byte("\x89PNG")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, resume.MsgUnsupportedType, decode[presenter.ErrorResponse](t, resp).Message)
	assert.Zero(t, model.callCount())
}

func TestParse_ModelRefuses(t *testing.T) {
	model := &stubModel{reply: "I'm sorry, I can't help with that."}
	app := newApp(t, model)

	resp, err := app.Test(uploadRequest(t, "/api/v1/resume/parse", "cv.docx", resume.MediaTypeDOCX, []byte("PK\x03\x04")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, resume.MsgExtractionFailed, decode[presenter.ErrorResponse](t, resp).Message)
}

func TestParse_TransportErrorHidden(t *testing.T) {
	model := &stubModel{err: errors.New("secret upstream detail")}
	app := newApp(t, model)

	resp, err := app.Test(uploadRequest(t, "/api/v1/resume/parse", "cv.txt", resume.MediaTypeText, []byte("Jane")))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "secret upstream detail")
}

func TestParse_NoFile(t *testing.T) {
	app := newApp(t, &stubModel{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/parse", strings.NewReader(""))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllowedTypes(t *testing.T) {
	app := newApp(t, &stubModel{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/resume/types", nil))
	require.NoError(t, err)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, "stub-model", out["model"])
	assert.Len(t, out["mediaTypes"], 3)
}

func TestHealth(t *testing.T) {
	app := newApp(t, &stubModel{})
	for _, path := range []string{"/api/v1/health", "/api/v1/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestForms_Flow(t *testing.T) {
	model := &stubModel{reply: janeDoe}
	app := newApp(t, model)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[form.State](t, resp)
	assert.Equal(t, form.StatusIdle, created.Status)
	base := "/api/v1/forms/" + created.ID.String()

	// editing before anything was parsed
	put := httptest.NewRequest(http.MethodPut, base, strings.NewReader(`{"fullName":"x"}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(put)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = app.Test(uploadRequest(t, base+"/upload", "cv.pdf", resume.MediaTypePDF, []byte("%PDF")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[form.State](t, resp)
	assert.Equal(t, form.StatusReady, st.Status)
	require.NotNil(t, st.Data)
	assert.Equal(t, "Jane Doe", st.Data.FullName)

	put = httptest.NewRequest(http.MethodPut, base, strings.NewReader(`{"fullName":"Jane Q. Doe","skills":["Go","SQL"]}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(put)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = decode[form.State](t, resp)
	assert.Equal(t, "Jane Q. Doe", st.Data.FullName)
	assert.Equal(t, []string{"Go", "SQL"}, st.Data.Skills)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, base+"/reset", nil))
	require.NoError(t, err)
	st = decode[form.State](t, resp)
	assert.Equal(t, form.StatusIdle, st.Status)
	assert.Nil(t, st.Data)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, base, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, base, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestForms_UploadFailureKeptInState(t *testing.T) {
	app := newApp(t, &stubModel{reply: `{"fullName":null}`})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil))
	require.NoError(t, err)
	id := decode[form.State](t, resp).ID.String()

	resp, err = app.Test(uploadRequest(t, "/api/v1/forms/"+id+"/upload", "cv.txt", resume.MediaTypeText, []byte("Jane")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[form.State](t, resp)
	assert.Equal(t, form.StatusFailed, st.Status)
	assert.Equal(t, resume.MsgExtractionFailed, st.Error)
}

func TestForms_UnsupportedUpload(t *testing.T) {
	model := &stubModel{reply: janeDoe}
	app := newApp(t, model)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil))
	require.NoError(t, err)
	id := decode[form.State](t, resp).ID.String()

	resp, err = app.Test(uploadRequest(t, "/api/v1/forms/"+id+"/upload", "a.png", "image/png", []byte("png")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Zero(t, model.callCount())
}

func TestForms_BusyWhileExtracting(t *testing.T) {
	model := &stubModel{reply: janeDoe, started: make(chan struct{}), release: make(chan struct{})}
	app := newApp(t, model)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil))
	require.NoError(t, err)
	target := "/api/v1/forms/" + decode[form.State](t, resp).ID.String() + "/upload"

	firstReq := uploadRequest(t, target, "a.txt", resume.MediaTypeText, []byte("A"))
	first := make(chan int, 1)
	go func() {
		r, err := app.Test(firstReq, -1)
		if err != nil {
			first <- 0
			return
		}
		first <- r.StatusCode
	}()
	<-model.started

	resp, err = app.Test(uploadRequest(t, target, "b.txt", resume.MediaTypeText, []byte("B")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(model.release)
	assert.Equal(t, http.StatusOK, <-first)
	assert.Equal(t, 1, model.callCount())
}

func TestForms_BadID(t *testing.T) {
	app := newApp(t, &stubModel{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/forms/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
