package session

import (
	"github.com/segmentio/ksuid"

	"github.com/shmit-go/wirecodec/wire"
)

// TransferState is the tri-state outcome of a Transfer: a Post or Request
// may be in flight (Pending) before it resolves to Complete or Failed.
// wire.Result's two-state Success/Failure is not enough here — there is a
// real window where neither has happened yet.
type TransferState uint8

const (
	TransferPending TransferState = iota
	TransferComplete
	TransferFailed
)

// Transfer tracks one Post or Request by correlation ID. How the Pending
// → {Complete, Failed} transition is driven — polling a Timer, a callback
// from the transport, or otherwise — is left to the caller; Transfer only
// carries state and identity.
type Transfer struct {
	id     ksuid.KSUID
	result wire.EnumResult[TransferState]
}

// NewTransfer starts a Transfer in the Pending state with a fresh
// correlation ID.
func NewTransfer() *Transfer {
	return &Transfer{id: ksuid.New(), result: wire.NewEnumResult(TransferPending)}
}

// ID returns the transfer's correlation ID.
func (t *Transfer) ID() ksuid.KSUID { return t.id }

// State returns the current state.
func (t *Transfer) State() TransferState { return t.result.Code() }

// Complete resolves the transfer successfully. It is a no-op once the
// transfer has already resolved.
func (t *Transfer) Complete() {
	if t.result.Code() == TransferPending {
		t.result = wire.NewEnumResult(TransferComplete)
	}
}

// Fail resolves the transfer unsuccessfully. It is a no-op once the
// transfer has already resolved.
func (t *Transfer) Fail() {
	if t.result.Code() == TransferPending {
		t.result = wire.NewEnumResult(TransferFailed)
	}
}

// IsPending reports whether the transfer has not yet resolved.
func (t *Transfer) IsPending() bool { return t.result.Is(TransferPending) }
