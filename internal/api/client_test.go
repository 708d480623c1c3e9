package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop()), srv
}

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if creds.Email != "amit@example.com" || creds.Password != "hunter22" {
			t.Errorf("wrong credentials forwarded: %+v", creds)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-abc","user":{"id":"u1","name":"Amit Roy","email":"amit@example.com"}}`))
	})

	token, user, err := client.Login(context.Background(), "amit@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("expected token jwt-abc, got %s", token)
	}
	if user.ID != "u1" || user.Name != "Amit Roy" {
		t.Errorf("wrong user decoded: %+v", user)
	}
}

func TestStatusCodeKindMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"nope"}`))
		})

		_, _, err := client.Login(context.Background(), "a@b.c", "pw")
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *Error, got %T", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Errorf("status %d: expected kind %s, got %s", tc.status, tc.kind, apiErr.Kind)
		}
		if apiErr.Message != "nope" {
			t.Errorf("status %d: backend message not carried over: %q", tc.status, apiErr.Message)
		}
		if KindOf(err) != tc.kind {
			t.Errorf("status %d: KindOf mismatch", tc.status)
		}
	}
}

func TestTransportFailureIsNetworkKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, zap.NewNop())
	srv.Close() // connection refused from here on

	_, err := client.ListProperties(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindNetwork {
		t.Errorf("expected network kind, got %s", KindOf(err))
	}
}

func TestListProperties_UnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"_id":"p1","name":"Lake View Apartment","src":"https://img/1.jpg","price":9000,"location":"Kolkata","availability":true,"ownerId":"o1"},
			{"_id":"p2","name":"Sunrise PG","src":"https://img/2.jpg","price":7000,"location":"Bangalore","availability":false,"ownerId":"o2"}
		]}`))
	})

	properties, err := client.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(properties))
	}
	p := properties[0]
	if p.ID != "p1" || p.ImageURL != "https://img/1.jpg" || p.OwnerID != "o1" || !p.Availability {
		t.Errorf("wrong decode: %+v", p)
	}
}

func TestKindOf_NonAPIErrorIsNetwork(t *testing.T) {
	if KindOf(errors.New("plain")) != KindNetwork {
		t.Error("non-API errors should count as network failures")
	}
}
