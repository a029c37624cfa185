package flow

import (
	"errors"
	"sync"
	"time"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/redemption"
)

var (
	ErrNotInForm     = errors.New("flow is not accepting form input")
	ErrNotInInfo     = errors.New("flow is not awaiting a redeem action")
	ErrFlowClosed    = errors.New("flow is closed")
	ErrStaleArtifact = errors.New("flow was closed while the artifact was being encoded")
	ErrWrongVariant  = errors.New("operation does not apply to this flow variant")
)

type Variant string

const (
	VariantBooking    Variant = "booking"
	VariantRedemption Variant = "redemption"
)

type State string

const (
	// booking variant
	StateForm         State = "form"
	StateConfirmation State = "confirmation"

	// redemption variant
	StateInfo     State = "info"
	StateRedeemed State = "redeemed"

	StateClosed State = "closed"
)

func (s State) String() string {
	return string(s)
}

// ResetScheduler defers the transient-state reset that follows a close. The
// production scheduler is time.AfterFunc; tests substitute a synchronous one.
type ResetScheduler func(d time.Duration, fn func())

func AfterFuncScheduler(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Flow is one booking or redemption attempt, from cafe selection to dismissal.
// It is an explicit state value plus transition methods, independent of any
// rendering; observers read state through getters or the completion callback.
type Flow struct {
	mu sync.Mutex

	variant Variant
	state   State
	cafe    cafe.Summary
	intent  booking.Intent

	record     *booking.Record
	redemption *redemption.Record

	// generation increments on close; a submit that began under an older
	// generation is discarded when it completes.
	generation uint64
}

func NewBookingFlow(cf cafe.Summary) *Flow {
	return &Flow{
		variant: VariantBooking,
		state:   StateForm,
		cafe:    cf,
		intent:  booking.NewIntent(),
	}
}

func NewRedemptionFlow(cf cafe.Summary) *Flow {
	return &Flow{
		variant: VariantRedemption,
		state:   StateInfo,
		cafe:    cf,
	}
}

// UpdateIntent applies a partial field edit. Only legal while the form is open.
func (f *Flow) UpdateIntent(u booking.FieldUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.variant != VariantBooking {
		return ErrWrongVariant
	}
	if f.state != StateForm {
		return ErrNotInForm
	}
	f.intent.Apply(u)
	return nil
}

// BeginSubmit snapshots the intent and the current generation ahead of the
// asynchronous artifact encoding step. The flow stays in Form until
// CompleteSubmit lands.
func (f *Flow) BeginSubmit() (booking.Intent, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.variant != VariantBooking {
		return booking.Intent{}, 0, ErrWrongVariant
	}
	if f.state != StateForm {
		return booking.Intent{}, 0, ErrNotInForm
	}
	return f.intent, f.generation, nil
}

// CompleteSubmit performs Form -> Confirmation. A generation mismatch means the
// flow was closed while encoding ran; the late result is discarded.
func (f *Flow) CompleteSubmit(gen uint64, rec *booking.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != gen || f.state != StateForm {
		return ErrStaleArtifact
	}
	f.record = rec
	f.state = StateConfirmation
	return nil
}

// CompleteRedeem performs Info -> Redeemed. There is no form guard: redeeming
// is unconditional.
func (f *Flow) CompleteRedeem(rec *redemption.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.variant != VariantRedemption {
		return ErrWrongVariant
	}
	if f.state != StateInfo {
		return ErrNotInInfo
	}
	f.redemption = rec
	f.state = StateRedeemed
	return nil
}

// Close exits the flow from any state. The visible transition happens
// immediately; transient form and artifact state is cleared only after the
// delay so the closing animation is never interrupted by the reset.
func (f *Flow) Close(delay time.Duration, schedule ResetScheduler) {
	f.mu.Lock()
	if f.state == StateClosed {
		f.mu.Unlock()
		return
	}
	f.state = StateClosed
	f.generation++
	f.mu.Unlock()

	if schedule == nil {
		schedule = AfterFuncScheduler
	}
	schedule(delay, f.resetTransient)
}

func (f *Flow) resetTransient() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.intent.Reset()
	f.record = nil
	f.redemption = nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Variant() Variant {
	return f.variant
}

func (f *Flow) Cafe() cafe.Summary {
	return f.cafe
}

func (f *Flow) Intent() booking.Intent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.intent
}

func (f *Flow) Record() *booking.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

func (f *Flow) Redemption() *redemption.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.redemption
}
