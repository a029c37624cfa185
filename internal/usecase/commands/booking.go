package commands

import (
	"context"
	"fmt"
	"log/slog"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/flow"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/infra/qrencode"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/pkg/ident"
	"brewzzy/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrWrongFlowVariant = errs.New("active flow is not a booking flow")
	ErrFlowAbandoned    = errs.New("flow was closed before submission completed")
)

type SubmitBookingResult struct {
	Booking *queries.BookingView
}

type BookingCommands interface {
	Open(ctx context.Context, sessionID uuid.UUID, cafeID string) (*queries.FlowView, error)
	UpdateIntent(ctx context.Context, sessionID uuid.UUID, upd booking.FieldUpdate) (*queries.FlowView, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*SubmitBookingResult, error)
	Close(ctx context.Context, sessionID uuid.UUID) error
}

type bookingCommandsImpl struct {
	sessions *memstore.Registry
	catalog  *cafe.Catalog
	encoder  ArtifactEncoder
	notifier Notifier
	ids      *ident.Generator
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingCommands(
	sessions *memstore.Registry,
	catalog *cafe.Catalog,
	encoder ArtifactEncoder,
	notifier Notifier,
	ids *ident.Generator,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		sessions: sessions,
		catalog:  catalog,
		encoder:  encoder,
		notifier: notifier,
		ids:      ids,
		clock:    clk,
		cfg:      cfg,
	}
}

// Open starts a booking flow for the selected cafe. Only one flow is active
// per session at a time.
func (c *bookingCommandsImpl) Open(_ context.Context, sessionID uuid.UUID, cafeID string) (*queries.FlowView, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	cf, ok := c.catalog.FindByID(cafeID)
	if !ok {
		return nil, errs.ErrCafeNotFound
	}

	fl := flow.NewBookingFlow(cf.Summarize())
	if err := sess.OpenFlow(fl); err != nil {
		return nil, err
	}

	return queries.NewFlowView(fl, c.clock.Now()), nil
}

// UpdateIntent applies one partial form edit to the open flow.
func (c *bookingCommandsImpl) UpdateIntent(_ context.Context, sessionID uuid.UUID, upd booking.FieldUpdate) (*queries.FlowView, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	fl, err := sess.ActiveFlow()
	if err != nil {
		return nil, err
	}
	if fl.Variant() != flow.VariantBooking {
		return nil, ErrWrongFlowVariant
	}

	if err := fl.UpdateIntent(upd); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidFlowState)
	}
	return queries.NewFlowView(fl, c.clock.Now()), nil
}

// Submit drives the Form -> Confirmation transition: validate the intent,
// generate the identifier, encode the artifact, construct the immutable
// record, append it and notify.
//
// Artifact encoding is the only suspension point. Its failure is absorbed: the
// booking is created with the empty artifact because losing the visual proof
// is recoverable and losing the booking is not; the session is told about the
// missing code through a failure toast. If the flow was closed while
// encoding ran, the late result is discarded and no record is created.
func (c *bookingCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID) (*SubmitBookingResult, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	fl, err := sess.ActiveFlow()
	if err != nil {
		return nil, err
	}
	if fl.Variant() != flow.VariantBooking {
		return nil, ErrWrongFlowVariant
	}

	intent, gen, err := fl.BeginSubmit()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidFlowState)
	}

	details, err := intent.Validate(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	cf := fl.Cafe()
	bookingID := c.ids.New(ident.PrefixBooking)

	artifact, encErr := c.encoder.Encode(ctx, qrencode.Payload{
		BookingID: bookingID,
		Cafe:      cf.Name,
		Date:      details.Date.String(),
		Time:      details.Slot.String(),
		Guests:    intent.Guests,
		Name:      details.Contact.FullName(),
	})
	if encErr != nil {
		slog.Error("failed to generate QR code", "booking_id", bookingID, "error", encErr)
		artifact = booking.EmptyArtifact
	}

	rec, err := booking.NewRecord(bookingID, cf, details, c.clock.Now(), artifact)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := fl.CompleteSubmit(gen, rec); err != nil {
		return nil, errs.Mark(err, ErrFlowAbandoned)
	}

	sess.Records().AppendBooking(rec)
	c.notifier.Success(sessionID, "Booking Confirmed!",
		fmt.Sprintf("Your table at %s has been reserved.", cf.Name))
	if encErr != nil {
		c.notifier.Failure(sessionID, "QR Code Unavailable",
			"Your booking was saved, but its QR code could not be generated.")
	}

	return &SubmitBookingResult{Booking: queries.NewBookingView(rec)}, nil
}

// Close dismisses the active flow. Transient state is reset only after the
// configured delay so the close transition is never visually interrupted.
func (c *bookingCommandsImpl) Close(_ context.Context, sessionID uuid.UUID) error {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return err
	}
	return sess.CloseFlow(c.cfg.ResetDelay, nil)
}
