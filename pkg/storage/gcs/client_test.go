package gcs

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func newStubClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	return &Client{
		defaultBucket: "ponto-bucket",
		tokenSource: &tokenSource{fetch: func(context.Context) (string, time.Time, error) {
			return "token", time.Now().Add(time.Hour), nil
		}},
		httpClient: &http.Client{Transport: rt},
	}
}

func TestUploadObjectSuccess(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, func(req *http.Request) *http.Response {
		if req.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", req.Method)
		}
		if req.Header.Get("Authorization") != "Bearer token" {
			t.Fatalf("unexpected auth %s", req.Header.Get("Authorization"))
		}
		q := req.URL.Query()
		if q.Get("uploadType") != "media" {
			t.Fatalf("expected media upload, got %q", q.Get("uploadType"))
		}
		if q.Get("name") != "fotos_ponto/abc.jpg" {
			t.Fatalf("unexpected object name %q", q.Get("name"))
		}
		if req.Header.Get("Content-Type") != "image/jpeg" {
			t.Fatalf("unexpected content type %s", req.Header.Get("Content-Type"))
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"name":"fotos_ponto/abc.jpg"}`)),
			Header:     http.Header{},
		}
	})

	url, err := client.UploadObject(context.Background(), "", "fotos_ponto/abc.jpg", "image/jpeg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("UploadObject: %v", err)
	}
	if url != "https://storage.googleapis.com/ponto-bucket/fotos_ponto/abc.jpg" {
		t.Fatalf("unexpected public url %s", url)
	}
}

func TestUploadObjectServerError(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader("denied")),
			Header:     http.Header{},
		}
	})

	if _, err := client.UploadObject(context.Background(), "", "obj", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatal("expected upload error")
	}
}

func TestUploadObjectValidation(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, func(req *http.Request) *http.Response {
		t.Fatal("no request expected")
		return nil
	})

	if _, err := client.UploadObject(context.Background(), "", "", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for missing object name")
	}
	if _, err := client.UploadObject(context.Background(), "", "obj", "text/plain", nil); err == nil {
		t.Fatal("expected error for nil body")
	}
}

func TestListObjectsNewestFirst(t *testing.T) {
	t.Parallel()

	body := `{"items":[
		{"name":"backups/backup-1.json","size":"10","timeCreated":"2026-01-01T10:00:00Z"},
		{"name":"backups/backup-3.json","size":"30","timeCreated":"2026-03-01T10:00:00Z"},
		{"name":"backups/backup-2.json","size":"20","timeCreated":"2026-02-01T10:00:00Z"}
	]}`

	client := newStubClient(t, func(req *http.Request) *http.Response {
		if req.URL.Query().Get("prefix") != "backups/" {
			t.Fatalf("unexpected prefix %q", req.URL.Query().Get("prefix"))
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
		}
	})

	items, err := client.ListObjects(context.Background(), "", "backups/")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Name != "backups/backup-3.json" {
		t.Fatalf("expected newest first, got %s", items[0].Name)
	}
	if items[2].Name != "backups/backup-1.json" {
		t.Fatalf("expected oldest last, got %s", items[2].Name)
	}
	if items[1].Size != 20 {
		t.Fatalf("expected parsed size 20, got %d", items[1].Size)
	}
}

func TestListObjectsPaginates(t *testing.T) {
	t.Parallel()

	calls := 0
	client := newStubClient(t, func(req *http.Request) *http.Response {
		calls++
		if calls == 1 {
			if req.URL.Query().Get("pageToken") != "" {
				t.Fatalf("first page should carry no token")
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"items":[{"name":"a","size":"1","timeCreated":"2026-01-01T00:00:00Z"}],"nextPageToken":"next"}`)),
				Header:     http.Header{},
			}
		}
		if req.URL.Query().Get("pageToken") != "next" {
			t.Fatalf("expected pageToken=next, got %q", req.URL.Query().Get("pageToken"))
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"items":[{"name":"b","size":"2","timeCreated":"2026-02-01T00:00:00Z"}]}`)),
			Header:     http.Header{},
		}
	})

	items, err := client.ListObjects(context.Background(), "", "")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 page fetches, got %d", calls)
	}
	if len(items) != 2 || items[0].Name != "b" {
		t.Fatalf("unexpected merged listing: %+v", items)
	}
}

func TestPublicURLEscapesSegments(t *testing.T) {
	t.Parallel()

	got := PublicURL("bucket", "uploads/João Silva/doc 1.pdf")
	want := "https://storage.googleapis.com/bucket/uploads/Jo%C3%A3o%20Silva/doc%201.pdf"
	if got != want {
		t.Fatalf("PublicURL = %s, want %s", got, want)
	}
}

func TestPingFailsWithoutBucket(t *testing.T) {
	t.Parallel()

	client := &Client{tokenSource: &tokenSource{fetch: func(context.Context) (string, time.Time, error) {
		return "token", time.Now().Add(time.Hour), nil
	}}}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error without bucket")
	}
}
