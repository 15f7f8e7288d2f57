package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/stubserver"
)

func memFile(name, content string) models.SelectedFile {
	return models.SelectedFile{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func newStubbed(t *testing.T) (*HTTPClient, *stubserver.Server) {
	t.Helper()
	stub := stubserver.New("", nil)
	ts := httptest.NewServer(stub.Handler())
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL+common.UploadPath, ts.URL+common.SendEmailPath), stub
}

func TestHTTPClient_Upload_StreamsAndReportsProgress(t *testing.T) {
	c, stub := newStubbed(t)
	content := strings.Repeat("0123456789", 10_000)

	var mu sync.Mutex
	var ticks []models.Progress
	resp, err := c.Upload(context.Background(), memFile("data.bin", content), func(p models.Progress) {
		mu.Lock()
		defer mu.Unlock()
		ticks = append(ticks, p)
	})
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	res := models.ParseUploadResult(resp.Body)
	require.Equal(t, models.ResultSuccess, res.Kind, resp.Body)

	stored, ok := stub.File(models.ResourceID(res.URL))
	require.True(t, ok)
	assert.Equal(t, content, string(stored))

	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.GreaterOrEqual(t, ticks[i].Loaded, ticks[i-1].Loaded)
	}
	last := ticks[len(ticks)-1]
	assert.Equal(t, int64(len(content)), last.Loaded)
	assert.Equal(t, 100, last.Percent())
}

func TestHTTPClient_Upload_ErrorStatusIsStillCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"file":"http://h/x"}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, ts.URL)
	resp, err := c.Upload(context.Background(), memFile("a", "abc"), nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, `{"file":"http://h/x"}`, resp.Body)
}

func TestHTTPClient_Upload_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewHTTPClient(url, url)
	_, err := c.Upload(context.Background(), memFile("a", "abc"), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTransport))
}

func TestHTTPClient_Upload_NoContent(t *testing.T) {
	c := NewHTTPClient("http://unused", "http://unused")

	_, err := c.Upload(context.Background(), models.SelectedFile{Name: "x"}, nil)
	assert.ErrorIs(t, err, common.ErrNoFile)

	_, err = c.Upload(context.Background(), models.SelectedFile{
		Name: "x",
		Open: func() (io.ReadCloser, error) { return nil, errors.New("permission denied") },
	}, nil)
	assert.ErrorContains(t, err, "permission denied")
}

func TestHTTPClient_SendEmail_Payload(t *testing.T) {
	var got map[string]any
	var contentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, ts.URL)
	resp, err := c.SendEmail(context.Background(), models.EmailRequest{UUID: "abc-123", EmailTo: "a@x.com", EmailFrom: "b@y.com"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]any{"uuid": "abc-123", "emailTo": "a@x.com", "emailFrom": "b@y.com"}, got)
}

func TestHTTPClient_SendEmail_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		success bool
		wantErr error
	}{
		{"success", http.StatusOK, `{"success":true}`, true, nil},
		{"refused", http.StatusOK, `{"success":false}`, false, nil},
		{"no flag", http.StatusOK, `{}`, false, nil},
		{"status ignored", http.StatusBadRequest, `{"success":true}`, true, nil},
		{"garbage", http.StatusOK, `<html>`, false, common.ErrParseResponse},
		{"array body", http.StatusOK, `[]`, false, nil},
		{"string body", http.StatusOK, `"ok"`, false, nil},
		{"null body", http.StatusOK, `null`, false, common.ErrParseResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			resp, err := NewHTTPClient(ts.URL, ts.URL).SendEmail(context.Background(), models.EmailRequest{UUID: "x"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.success, resp.Success)
		})
	}
}

func TestHTTPClient_SendEmail_AgainstStub(t *testing.T) {
	c, stub := newStubbed(t)

	up, err := c.Upload(context.Background(), memFile("a.txt", "hi"), nil)
	require.NoError(t, err)
	url := models.ParseUploadResult(up.Body).URL

	resp, err := c.SendEmail(context.Background(), models.EmailRequest{
		UUID: models.ResourceID(url), EmailTo: "a@x.com", EmailFrom: "b@y.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, stub.Sent(), 1)
}

func TestHTTPClient_SendEmail_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewHTTPClient(url, url).SendEmail(context.Background(), models.EmailRequest{})
	assert.ErrorIs(t, err, common.ErrTransport)
}
