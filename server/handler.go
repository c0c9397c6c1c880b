package server

import (
	"compress/gzip"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to tell browsers how long to cache http responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderPragma is used to tell old browsers to not cache http responses.
	HeaderPragma = "Pragma"
	// HeaderExpires is used to tell browsers when a response is stale.
	HeaderExpires = "Expires"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
	// noCache tells browsers to always ask for the latest version of a file.
	noCache = "no-cache, no-store, must-revalidate"
	// indexPath is the page that is served for the root of the site.
	indexPath = "/index.html"
)

// fileHandler creates a handler for the static files.
func (cfg Config) fileHandler(staticFS fs.FS) http.Handler {
	h := http.FileServer(http.FS(staticFS))
	h = cacheHandler(h, cfg.CacheSec)
	h = gzipHandler(h)
	return methodHandler(h, http.MethodGet, http.MethodHead)
}

// methodHandler only allows requests with the methods.
func methodHandler(h http.Handler, methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range methods {
			if r.Method == m {
				h.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("Allow", allow)
		httpError(w, http.StatusMethodNotAllowed)
	}
}

// cacheHandler adds the cache and mime type headers.
// Nothing is cached if cacheSec is zero.  The page is never cached, so it always refers to the latest binary.
func cacheHandler(h http.Handler, cacheSec int) http.HandlerFunc {
	cacheMaxAge := fmt.Sprintf("max-age=%d", cacheSec)
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path
		if strings.HasSuffix(name, "/") {
			name += indexPath[1:]
		}
		switch {
		case cacheSec == 0, name == indexPath:
			w.Header().Set(HeaderCacheControl, noCache)
			w.Header().Set(HeaderPragma, "no-cache")
			w.Header().Set(HeaderExpires, "0")
		default:
			w.Header().Set(HeaderCacheControl, cacheMaxAge)
		}
		addMimeType(name, w)
		h.ServeHTTP(w, r)
	}
}

// gzipHandler compresses the response if the request accepts it.
// Responses that drop the encoding header before writing it, such as errors, are not compressed.
func gzipHandler(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Set(HeaderContentEncoding, "gzip")
		wrw := wrappedResponseWriter{
			gzip:           gzip.NewWriter(w),
			ResponseWriter: w,
		}
		defer wrw.close()
		h.ServeHTTP(&wrw, r)
	}
}

// httpsRedirectHandler redirects the request to https.
func httpsRedirectHandler(httpsPort int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		// derived from net.SplitHostPort, but does not throw error :
		lastColonIndex := strings.LastIndex(host, ":")
		if lastColonIndex >= 0 {
			host = host[:lastColonIndex]
		}
		if httpsPort != 443 {
			host += fmt.Sprintf(":%d", httpsPort)
		}
		httpsURI := "https://" + host + r.URL.Path
		http.Redirect(w, r, httpsURI, http.StatusMovedPermanently)
	}
}

// httpError writes the error status code.
func httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// addMimeType adds the applicable mime type to the response.  Files without extensions are assumed to be text
func addMimeType(fileName string, w http.ResponseWriter) {
	extension := path.Ext(fileName)
	var mimeType string
	switch extension {
	case ".wasm":
		mimeType = "application/wasm"
	case "":
		mimeType = mime.TypeByExtension(".txt")
	default:
		mimeType = mime.TypeByExtension(extension)
	}
	if len(mimeType) != 0 {
		w.Header().Set(HeaderContentType, mimeType)
	}
}

// wrappedResponseWriter compresses the response with gzip.
type wrappedResponseWriter struct {
	http.ResponseWriter
	gzip  *gzip.Writer
	plain bool
}

// WriteHeader sends the header, checking that the response is still encoded.
func (wrw *wrappedResponseWriter) WriteHeader(statusCode int) {
	if wrw.Header().Get(HeaderContentEncoding) != "gzip" {
		wrw.plain = true
	}
	wrw.ResponseWriter.WriteHeader(statusCode)
}

// Write delegates the write to the gzip writer unless the response is not encoded.
func (wrw *wrappedResponseWriter) Write(p []byte) (n int, err error) {
	if wrw.plain {
		return wrw.ResponseWriter.Write(p)
	}
	return wrw.gzip.Write(p)
}

// close flushes the compressed response.
func (wrw *wrappedResponseWriter) close() {
	if wrw.plain {
		return
	}
	wrw.gzip.Close()
}
