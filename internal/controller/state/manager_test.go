package state

import "testing"

func TestManager_StateTransitions(t *testing.T) {
	sm := NewManager()

	if sm.GetState(1) != StateNone {
		t.Fatal("fresh chat should have no state")
	}

	sm.SetState(1, StateLoginEmail)
	if sm.GetState(1) != StateLoginEmail {
		t.Fatal("state was not set")
	}

	sm.SetState(1, StateLoginPassword)
	if sm.GetState(1) != StateLoginPassword {
		t.Fatal("state was not advanced")
	}

	// other chats are unaffected
	if sm.GetState(2) != StateNone {
		t.Fatal("state leaked between chats")
	}
}

func TestManager_SetStateNoneDropsRecord(t *testing.T) {
	sm := NewManager()

	sm.SetState(1, StateBookingDate)
	sm.SetData(1, "booking_date", "2026-09-15")

	sm.SetState(1, StateNone)
	if sm.GetState(1) != StateNone {
		t.Fatal("state should be gone")
	}
	if _, ok := sm.GetData(1, "booking_date"); ok {
		t.Fatal("data should be dropped with the record")
	}
}

func TestManager_DataSurvivesStateChanges(t *testing.T) {
	sm := NewManager()

	sm.SetState(1, StatePropertyName)
	sm.SetData(1, "draft_name", "Green Nest")
	sm.SetState(1, StatePropertyLocation)

	value, ok := sm.GetData(1, "draft_name")
	if !ok || value.(string) != "Green Nest" {
		t.Fatal("data should survive a state advance")
	}
}

func TestManager_SetDataWithoutState(t *testing.T) {
	sm := NewManager()

	// view caches are stored without an active dialog
	sm.SetData(1, "catalog", []string{"p1"})

	if sm.GetState(1) != StateNone {
		t.Fatal("SetData must not start a dialog")
	}
	if _, ok := sm.GetData(1, "catalog"); !ok {
		t.Fatal("data should be readable without a dialog")
	}
}

func TestManager_ClearState(t *testing.T) {
	sm := NewManager()

	sm.SetState(1, StateSignupName)
	sm.SetData(1, "signup_name", "Amit")
	sm.ClearState(1)

	if sm.GetState(1) != StateNone {
		t.Fatal("state should be cleared")
	}
	if data := sm.GetAllData(1); data != nil {
		t.Fatalf("expected no data after clear, got %v", data)
	}
}

func TestManager_GetAllDataReturnsCopy(t *testing.T) {
	sm := NewManager()

	sm.SetData(1, "k", "v")
	data := sm.GetAllData(1)
	data["k"] = "mutated"

	value, _ := sm.GetData(1, "k")
	if value.(string) != "v" {
		t.Fatal("GetAllData must return a copy")
	}
}
