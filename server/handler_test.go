package server

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

var testStaticFS = fstest.MapFS{
	"index.html":   &fstest.MapFile{Data: []byte("<html>circles</html>")},
	"main.js":      &fstest.MapFile{Data: []byte("mountApp();")},
	"wasm_exec.js": &fstest.MapFile{Data: []byte("// go")},
	"main.wasm":    &fstest.MapFile{Data: []byte("\x00asm")},
}

func TestFileHandler(t *testing.T) {
	fileHandlerTests := []struct {
		name             string
		method           string
		path             string
		cacheSec         int
		wantCode         int
		wantBody         string
		wantContentType  string
		wantCacheControl string
	}{
		{
			name:             "root is index page",
			method:           http.MethodGet,
			path:             "/",
			wantCode:         200,
			wantBody:         "<html>circles</html>",
			wantContentType:  "text/html; charset=utf-8",
			wantCacheControl: noCache,
		},
		{
			name:             "wasm",
			method:           http.MethodGet,
			path:             "/main.wasm",
			wantCode:         200,
			wantBody:         "\x00asm",
			wantContentType:  "application/wasm",
			wantCacheControl: noCache,
		},
		{
			name:             "javascript",
			method:           http.MethodGet,
			path:             "/main.js",
			wantCode:         200,
			wantBody:         "mountApp();",
			wantCacheControl: noCache,
		},
		{
			name:             "cached wasm",
			method:           http.MethodGet,
			path:             "/main.wasm",
			cacheSec:         60,
			wantCode:         200,
			wantBody:         "\x00asm",
			wantContentType:  "application/wasm",
			wantCacheControl: "max-age=60",
		},
		{
			name:             "index page never cached",
			method:           http.MethodGet,
			path:             "/",
			cacheSec:         60,
			wantCode:         200,
			wantBody:         "<html>circles</html>",
			wantContentType:  "text/html; charset=utf-8",
			wantCacheControl: noCache,
		},
		{
			name:             "head",
			method:           http.MethodHead,
			path:             "/main.js",
			wantCode:         200,
			wantCacheControl: noCache,
		},
		{
			name:     "missing",
			method:   http.MethodGet,
			path:     "/favicon.ico",
			wantCode: 404,
		},
		{
			name:     "post",
			method:   http.MethodPost,
			path:     "/",
			wantCode: 405,
		},
	}
	for _, test := range fileHandlerTests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Config{
				CacheSec: test.cacheSec,
			}
			h := cfg.fileHandler(testStaticFS)
			r := httptest.NewRequest(test.method, test.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			got := w.Result()
			switch {
			case test.wantCode != got.StatusCode:
				t.Errorf("wanted status %v, got %v", test.wantCode, got.StatusCode)
			case test.wantCode != 200:
				// NOOP
			case test.wantBody != w.Body.String():
				t.Errorf("wanted body %q, got %q", test.wantBody, w.Body.String())
			case len(test.wantContentType) != 0 && test.wantContentType != got.Header.Get(HeaderContentType):
				t.Errorf("wanted content type %q, got %q", test.wantContentType, got.Header.Get(HeaderContentType))
			case test.wantCacheControl != got.Header.Get(HeaderCacheControl):
				t.Errorf("wanted cache control %q, got %q", test.wantCacheControl, got.Header.Get(HeaderCacheControl))
			case test.wantCacheControl == noCache && (got.Header.Get(HeaderPragma) != "no-cache" || got.Header.Get(HeaderExpires) != "0"):
				t.Errorf("wanted no-cache pragma and expires headers, got %v", got.Header)
			}
		})
	}
}

func TestFileHandlerGzip(t *testing.T) {
	var cfg Config
	h := cfg.fileHandler(testStaticFS)
	r := httptest.NewRequest(http.MethodGet, "/main.js", nil)
	r.Header.Set(HeaderAcceptEncoding, "gzip, deflate")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if want, got := "gzip", w.Header().Get(HeaderContentEncoding); want != got {
		t.Fatalf("wanted content encoding %q, got %q", want, got)
	}
	gr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("creating gzip reader: %v", err)
	}
	body, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("reading gzip body: %v", err)
	}
	if want, got := "mountApp();", string(body); want != got {
		t.Errorf("wanted body %q, got %q", want, got)
	}
}

func TestFileHandlerGzipNotFound(t *testing.T) {
	var cfg Config
	h := cfg.fileHandler(testStaticFS)
	r := httptest.NewRequest(http.MethodGet, "/missing.png", nil)
	r.Header.Set(HeaderAcceptEncoding, "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if want, got := 404, w.Code; want != got {
		t.Fatalf("wanted status %v, got %v", want, got)
	}
	if w.Header().Get(HeaderContentEncoding) == "gzip" {
		if _, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes())); err != nil {
			t.Errorf("wanted gzip body when content encoding is set: %v", err)
		}
	}
}

func TestHTTPSRedirectHandler(t *testing.T) {
	httpsRedirectHandlerTests := []struct {
		httpsPort int
		url       string
		want      string
	}{
		{443, "http://example.com/main.js", "https://example.com/main.js"},
		{443, "http://example.com:80/", "https://example.com/"},
		{8443, "http://localhost:8000/main.wasm", "https://localhost:8443/main.wasm"},
	}
	for i, test := range httpsRedirectHandlerTests {
		h := httpsRedirectHandler(test.httpsPort)
		r := httptest.NewRequest(http.MethodGet, test.url, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		switch {
		case w.Code != http.StatusMovedPermanently:
			t.Errorf("test %v: wanted redirect, got status %v", i, w.Code)
		case test.want != w.Header().Get("Location"):
			t.Errorf("test %v: wanted location %v, got %v", i, test.want, w.Header().Get("Location"))
		}
	}
}

func TestAddMimeType(t *testing.T) {
	addMimeTypeTests := []struct {
		fileName string
		want     string
	}{
		{"/main.wasm", "application/wasm"},
		{"/index.html", "text/html; charset=utf-8"},
		{"/LICENSE", "text/plain; charset=utf-8"},
	}
	for _, test := range addMimeTypeTests {
		w := httptest.NewRecorder()
		addMimeType(test.fileName, w)
		if got := w.Header().Get(HeaderContentType); test.want != got {
			t.Errorf("%v: wanted %q, got %q", test.fileName, test.want, got)
		}
	}
}
