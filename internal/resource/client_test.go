package resource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercado/internal/domain"

	"go.uber.org/zap"
)

// fakeResourceServer is a minimal JSON document server keyed by path.
func fakeResourceServer(t *testing.T) *httptest.Server {
	t.Helper()

	products := map[string]domain.Product{
		"1": {ID: 1, Name: "Phone", Description: "remote phone", Price: 699.99, Stock: 10, CategoryID: 1},
		"2": {ID: 2, Name: "Laptop", Description: "remote laptop", Price: 899.99, Stock: 5, CategoryID: 1},
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == "GET" && r.URL.Path == "/products":
			list := []domain.Product{products["1"], products["2"]}
			json.NewEncoder(w).Encode(list)
		case r.Method == "GET" && strings.HasPrefix(r.URL.Path, "/products/"):
			id := strings.TrimPrefix(r.URL.Path, "/products/")
			p, ok := products[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(p)
		case r.Method == "POST" && r.URL.Path == "/products":
			var p domain.Product
			json.NewDecoder(r.Body).Decode(&p)
			p.ID = 100
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(p)
		case r.Method == "PUT" && strings.HasPrefix(r.URL.Path, "/products/"):
			var p domain.Product
			json.NewDecoder(r.Body).Decode(&p)
			json.NewEncoder(w).Encode(p)
		case r.Method == "DELETE" && strings.HasPrefix(r.URL.Path, "/products/"):
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRemoteCRUDRoundTrip(t *testing.T) {
	srv := fakeResourceServer(t)
	defer srv.Close()

	ctx := context.Background()
	client := NewClient(srv.URL, 0, zap.NewNop())
	remote := NewRemote[domain.Product, *domain.Product](client, "products")

	list, err := remote.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d items, want 2", len(list))
	}

	item, err := remote.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Name != "Phone" {
		t.Fatalf("Get returned %q", item.Name)
	}

	created, err := remote.Create(ctx, domain.Product{Name: "Tablet", Description: "a new tablet", Price: 300, Stock: 3, CategoryID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 100 {
		t.Fatalf("Create returned id %d, want the server-assigned 100", created.ID)
	}

	// Update sends the path id in the payload; the echo server shows us what
	// went over the wire.
	updated, err := remote.Update(ctx, 2, domain.Product{ID: 9999, Name: "Laptop Pro", Description: "upgraded", Price: 1200, Stock: 2, CategoryID: 1})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != 2 {
		t.Fatalf("Update sent id %d, want the path id 2", updated.ID)
	}

	if err := remote.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestCallWrapsTransportFailures(t *testing.T) {
	ctx := context.Background()

	// Connection refused: a server that has already been torn down.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, 0, zap.NewNop())
	remote := NewRemote[domain.Product, *domain.Product](client, "products")

	if _, err := remote.List(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("List against dead server: %v, want ErrUnavailable", err)
	}
	if _, err := remote.Get(ctx, 1); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Get against dead server: %v, want ErrUnavailable", err)
	}
	if err := remote.Delete(ctx, 1); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Delete against dead server: %v, want ErrUnavailable", err)
	}
}

func TestCallWrapsErrorStatuses(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable}

	for _, status := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(srv.URL, 0, zap.NewNop())
		remote := NewRemote[domain.Product, *domain.Product](client, "products")

		if _, err := remote.List(context.Background()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("status %d: got %v, want ErrUnavailable", status, err)
		}
		srv.Close()
	}
}

func TestCallWrapsTimeouts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond, zap.NewNop())
	remote := NewRemote[domain.Product, *domain.Product](client, "products")

	if _, err := remote.List(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("slow server: got %v, want ErrUnavailable", err)
	}
}

func TestCallWrapsMalformedResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, zap.NewNop())
	remote := NewRemote[domain.Product, *domain.Product](client, "products")

	if _, err := remote.List(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("malformed body: got %v, want ErrUnavailable", err)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:3001/", 0, zap.NewNop())
	if client.BaseURL() != "http://localhost:3001" {
		t.Fatalf("BaseURL = %q", client.BaseURL())
	}
}
