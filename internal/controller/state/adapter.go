package state

import (
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
)

// Adapter exposes the Manager through the callbacktypes.StateManager
// interface, converting between the two UserState string types.
type Adapter struct {
	manager *Manager
}

func NewAdapter(manager *Manager) *Adapter {
	return &Adapter{manager: manager}
}

func (a *Adapter) GetState(chatID int64) callbacktypes.UserState {
	return callbacktypes.UserState(a.manager.GetState(chatID))
}

func (a *Adapter) SetState(chatID int64, s callbacktypes.UserState) {
	a.manager.SetState(chatID, UserState(s))
}

func (a *Adapter) GetData(chatID int64, key string) (interface{}, bool) {
	return a.manager.GetData(chatID, key)
}

func (a *Adapter) SetData(chatID int64, key string, value interface{}) {
	a.manager.SetData(chatID, key, value)
}

func (a *Adapter) ClearState(chatID int64) {
	a.manager.ClearState(chatID)
}
