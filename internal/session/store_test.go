package session

import (
	"testing"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

func TestDecodeUser(t *testing.T) {
	var user model.User
	err := decodeUser([]byte(`{"id":"u1","name":"Amit Roy","email":"amit@example.com"}`), &user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Name != "Amit Roy" {
		t.Fatalf("wrong decode: %+v", user)
	}
}

func TestDecodeUser_RejectsMissingID(t *testing.T) {
	var user model.User
	if err := decodeUser([]byte(`{"name":"Ghost"}`), &user); err == nil {
		t.Fatal("expected error for record without id")
	}
}

func TestDecodeUser_RejectsMalformedJSON(t *testing.T) {
	var user model.User
	if err := decodeUser([]byte(`{broken`), &user); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
