package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/shopfilter/internal/catalog"
	"github.com/five82/shopfilter/internal/controller"
	"github.com/five82/shopfilter/internal/filters"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestSetupWiresImportAndCategories(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/front/categories" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"status":true,"data":[{"id":1,"name":"Shoes"},{"id":"2","name":"Hats"}]}`)
	}))
	defer api.Close()

	t.Setenv("SHOPFILTER_BASE_URL", "")
	dir := t.TempDir()
	cfgPath := writeConfig(t, `start_url = "https://shop.test/products?size=XL&min_price=50"`)

	env, err := Setup(context.Background(), Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		BaseURL:    api.URL,
		LogFile:    filepath.Join(dir, "logs", "session.log"),
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer env.Close()

	if env.Controller.State() != controller.Imported {
		t.Fatalf("state = %v, want imported", env.Controller.State())
	}
	c := env.Controller.Criteria()
	if c.Size != filters.SizeXL || c.PriceMin != 50 {
		t.Fatalf("criteria = %+v, want XL from 50", c)
	}

	list := env.Loader.Load(context.Background())
	if list.Status != catalog.StatusLoaded || len(list.Items) != 2 {
		t.Fatalf("list = %+v, want 2 loaded items", list)
	}

	env.Logger.Info("probe")
	data, err := os.ReadFile(env.Config.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Fatalf("log missing session start:\n%s", data)
	}
}

func TestSetupRejectsBadURLs(t *testing.T) {
	t.Setenv("SHOPFILTER_BASE_URL", "")
	dir := t.TempDir()
	base := Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		LogFile:    filepath.Join(dir, "session.log"),
	}

	tests := []struct {
		name   string
		mutate func(*Options)
		want   string
	}{
		{"base url without host", func(o *Options) { o.BaseURL = "not a url" }, "init catalog client"},
		{"unparseable start url", func(o *Options) { o.StartURL = "://bad" }, "start url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			_, err := Setup(context.Background(), opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Setup err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSetupInvalidConfig(t *testing.T) {
	cfgPath := writeConfig(t, "base_url = [")
	_, err := Setup(context.Background(), Options{ConfigPath: cfgPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Setup err = %v, want load config error", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "shopfilter_url_imports_total 1\n")
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	addr, err := StartMetricsServer(ctx, "127.0.0.1:0", handler, logger)
	if err != nil {
		t.Fatalf("StartMetricsServer: %v", err)
	}

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "shopfilter_url_imports_total") {
		t.Fatalf("body = %q", body)
	}

	resp, err = http.Get("http://" + addr.String() + "/other")
	if err != nil {
		t.Fatalf("GET /other: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStartMetricsServerBadAddr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := StartMetricsServer(context.Background(), "256.0.0.1:bad", http.NotFoundHandler(), logger)
	if err == nil {
		t.Fatalf("expected listen error")
	}
}
