package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantErr     bool
		statusCode  int
		minLength   int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>Test Article</title></head>
				<body>
					<article>
						<h1>Test Article Title</h1>
						<p>This is the main content of the article.</p>
						<p>It has multiple paragraphs.</p>
					</article>
				</body>
				</html>`,
			wantContent: "Test Article Title",
			statusCode:  http.StatusOK,
		},
		{
			name: "extraction with minimal content",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Short content</p>
				</body>
				</html>`,
			wantContent: "Short content",
			statusCode:  http.StatusOK,
		},
		{
			name: "content shorter than minimum",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Short content</p>
				</body>
				</html>`,
			wantErr:    true,
			statusCode: http.StatusOK,
			minLength:  500,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     true,
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     true,
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// create test server
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if tt.statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "text/html")
				}
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			extractor := NewHTTPExtractor(Opts{Timeout: 10 * time.Second, MinTextLength: tt.minLength})

			ctx := context.Background()
			content, err := extractor.Extract(ctx, server.URL)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, content.Text, tt.wantContent)
			assert.Equal(t, server.URL, content.URL)
			assert.Empty(t, content.Images)
		})
	}
}

func TestHTTPExtractor_Extract_Timeout(t *testing.T) {
	// create slow server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Too late</body></html>"))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(Opts{Timeout: 100 * time.Millisecond})

	ctx := context.Background()
	_, err := extractor.Extract(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestHTTPExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewHTTPExtractor(Opts{Timeout: time.Second})

	tests := []struct {
		name string
		url  string
	}{
		{
			name: "empty url",
			url:  "",
		},
		{
			name: "invalid scheme",
			url:  "not-a-url",
		},
		{
			name: "unsupported scheme",
			url:  "ftp://example.com/file",
		},
		{
			name: "unreachable host",
			url:  "http://localhost:99999/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, err := extractor.Extract(ctx, tt.url)
			require.Error(t, err)
		})
	}
}

func TestHTTPExtractor_Extract_ContextCancellation(t *testing.T) {
	// create server that waits
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html><body>Content</body></html>"))
		}
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(Opts{Timeout: 5 * time.Second})

	// create context and cancel it immediately
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.Extract(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestHTTPExtractor_Extract_Metadata(t *testing.T) {
	page := `<!DOCTYPE html>
<html lang="vi">
<head>
	<title>Giá vàng tăng mạnh trong phiên sáng</title>
	<meta property="og:title" content="Giá vàng tăng mạnh trong phiên sáng">
	<meta property="og:image" content="/images/gold.jpg">
	<meta name="author" content="Minh Anh">
	<meta property="article:published_time" content="2024-05-01T08:00:00+07:00">
</head>
<body>
	<article>
		<h1>Giá vàng tăng mạnh trong phiên sáng</h1>
		<p>Giá vàng miếng trong nước tăng mạnh trong phiên giao dịch sáng nay, theo sát đà tăng của thị trường thế giới.</p>
		<p>Các chuyên gia cho rằng nhu cầu trú ẩn an toàn tiếp tục đẩy giá kim loại quý lên cao trong những tuần tới.</p>
	</article>
</body>
</html>`

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(Opts{Timeout: 5 * time.Second, UserAgent: "newsgraph-test", MinTextLength: 50, IncludeImages: true})
	content, err := extractor.Extract(context.Background(), server.URL+"/article")
	require.NoError(t, err)

	assert.Equal(t, "newsgraph-test", gotUA)
	assert.Contains(t, content.Title, "Giá vàng tăng mạnh")
	assert.Contains(t, content.Text, "nhu cầu trú ẩn an toàn")
	assert.Contains(t, content.Images, server.URL+"/images/gold.jpg")
	require.NotNil(t, content.PubDate)
	assert.Equal(t, 2024, content.PubDate.Year())
}
