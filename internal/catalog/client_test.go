package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("shop.test:8080/store?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "http://shop.test:8080/store/" {
		t.Fatalf("base = %q, want http://shop.test:8080/store/", u.String())
	}

	if _, err := parseBaseURL("http:///nohost"); err == nil {
		t.Fatalf("parseBaseURL returned nil error for missing host")
	}
}

func serveJSON(t *testing.T, body string) (*Client, *string) {
	t.Helper()
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/store")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c, &gotPath
}

func TestClient_FetchCategories(t *testing.T) {
	c, gotPath := serveJSON(t, `{"status":true,"data":[{"id":1,"name":"Shoes"},{"id":"b2","name":"Bags"}]}`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.FetchCategories(ctx)
	if err != nil {
		t.Fatalf("FetchCategories returned error: %v", err)
	}
	if *gotPath != "/store/api/front/categories" {
		t.Fatalf("path = %q, want /store/api/front/categories", *gotPath)
	}
	if len(items) != 2 || items[0].ID != "1" || items[0].Name != "Shoes" || items[1].ID != "b2" {
		t.Fatalf("items = %#v, want Shoes(1) and Bags(b2)", items)
	}
}

func TestClient_FetchCategoriesInvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"status false", `{"status":false}`},
		{"status missing", `{"data":[]}`},
		{"status zero", `{"status":0,"data":[]}`},
		{"data object", `{"status":true,"data":{"id":1}}`},
		{"data null", `{"status":true,"data":null}`},
		{"data missing", `{"status":"ok"}`},
		{"item not object", `{"status":true,"data":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := serveJSON(t, tt.body)
			_, err := c.FetchCategories(context.Background())
			if !errors.Is(err, ErrInvalidResponse) {
				t.Fatalf("FetchCategories error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(garbled.Close)

	c, err := NewClient(failing.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchCategories(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchCategories error = %v, want status 500 error", err)
	}

	c, err = NewClient(garbled.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchCategories(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchCategories error = %v, want decode response error", err)
	}
}

func TestCategoryID_UnmarshalNull(t *testing.T) {
	var id CategoryID = "x"
	if err := id.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null) returned error: %v", err)
	}
	if id != "" {
		t.Fatalf("id = %q, want empty", id)
	}
}
