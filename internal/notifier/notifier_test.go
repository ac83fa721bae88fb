package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotify(t *testing.T) {
	var got Payload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
	}))
	defer srv.Close()

	n := New(srv.URL, "sekrit")
	if err := n.Notify("Up next", "English at 09:25 (in 5 min)"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if got.Title != "Up next" || got.Text == "" {
		t.Errorf("payload = %+v", got)
	}
	if auth != "Bearer sekrit" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestNotifyNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("unexpected Authorization header %q", h)
		}
	}))
	defer srv.Close()

	if err := New(srv.URL, "").Notify("Up next", "test"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
}

func TestNotifyFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if err := New(srv.URL, "").Notify("Up next", "test"); err == nil {
		t.Error("Notify() succeeded on a 403")
	}
}

func TestNotifyUnconfigured(t *testing.T) {
	if err := New("", "").Notify("Up next", "test"); err == nil {
		t.Error("Notify() succeeded with no webhook URL")
	}
}
