package domain

// SourceStatus is the connection-health state of a source.
type SourceStatus string

const (
	StatusDisconnected SourceStatus = "DISCONNECTED"
	StatusConnected    SourceStatus = "CONNECTED"
	StatusSyncing      SourceStatus = "SYNCING"
	StatusExpired      SourceStatus = "EXPIRED"
	StatusError        SourceStatus = "ERROR"
)

// Statuses lists every valid source status.
var Statuses = []SourceStatus{
	StatusDisconnected,
	StatusConnected,
	StatusSyncing,
	StatusExpired,
	StatusError,
}

// StatusEvent is an input to the connection state machine.
type StatusEvent string

const (
	EventAuthSuccess   StatusEvent = "auth_success"
	EventSyncStart     StatusEvent = "sync_start"
	EventSyncSuccess   StatusEvent = "sync_success"
	EventSyncAuthError StatusEvent = "sync_auth_error"
	EventSyncError     StatusEvent = "sync_error"
	EventDisconnect    StatusEvent = "disconnect"
)

// StatusEvents lists every state-machine event.
var StatusEvents = []StatusEvent{
	EventAuthSuccess,
	EventSyncStart,
	EventSyncSuccess,
	EventSyncAuthError,
	EventSyncError,
	EventDisconnect,
}

// Transition applies a state-machine event to the current status and returns
// the resulting status. The function is total: every (status, event) pair
// resolves to one of the five valid states. Events that do not apply in the
// current state leave it unchanged; disconnect applies from any state.
func Transition(current SourceStatus, event StatusEvent) SourceStatus {
	switch event {
	case EventDisconnect:
		return StatusDisconnected
	case EventAuthSuccess:
		return StatusConnected
	case EventSyncStart:
		if current == StatusConnected {
			return StatusSyncing
		}
		return current
	case EventSyncSuccess:
		if current == StatusSyncing || current == StatusConnected {
			return StatusConnected
		}
		return current
	case EventSyncAuthError:
		if current == StatusSyncing || current == StatusConnected {
			return StatusExpired
		}
		return current
	case EventSyncError:
		if current == StatusSyncing || current == StatusConnected {
			return StatusError
		}
		return current
	}
	return current
}
