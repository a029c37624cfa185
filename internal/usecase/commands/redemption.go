package commands

import (
	"context"
	"fmt"

	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/domain/flow"
	"brewzzy/internal/domain/redemption"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/errs"
	"brewzzy/internal/pkg/ident"
	"brewzzy/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrWrongRedemptionVariant = errs.New("active flow is not a redemption flow")

type RedeemResult struct {
	Redemption *queries.RedemptionView
}

type RedemptionCommands interface {
	Open(ctx context.Context, sessionID uuid.UUID, cafeID string) (*queries.FlowView, error)
	Redeem(ctx context.Context, sessionID uuid.UUID) (*RedeemResult, error)
	Close(ctx context.Context, sessionID uuid.UUID) error
}

type redemptionCommandsImpl struct {
	sessions *memstore.Registry
	catalog  *cafe.Catalog
	notifier Notifier
	ids      *ident.Generator
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewRedemptionCommands(
	sessions *memstore.Registry,
	catalog *cafe.Catalog,
	notifier Notifier,
	ids *ident.Generator,
	clk clock.Clock,
	cfg config.BookingConfig,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		sessions: sessions,
		catalog:  catalog,
		notifier: notifier,
		ids:      ids,
		clock:    clk,
		cfg:      cfg,
	}
}

func (c *redemptionCommandsImpl) Open(_ context.Context, sessionID uuid.UUID, cafeID string) (*queries.FlowView, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	cf, ok := c.catalog.FindByID(cafeID)
	if !ok {
		return nil, errs.ErrCafeNotFound
	}

	fl := flow.NewRedemptionFlow(cf.Summarize())
	if err := sess.OpenFlow(fl); err != nil {
		return nil, err
	}

	return queries.NewFlowView(fl, c.clock.Now()), nil
}

// Redeem drives Info -> Redeemed unconditionally: there is no form to guard,
// only the implicit cafe choice made when the flow opened. The code, its
// identifier and the fixed expiry window are all fixed here and never change.
func (c *redemptionCommandsImpl) Redeem(_ context.Context, sessionID uuid.UUID) (*RedeemResult, error) {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	fl, err := sess.ActiveFlow()
	if err != nil {
		return nil, err
	}
	if fl.Variant() != flow.VariantRedemption {
		return nil, ErrWrongRedemptionVariant
	}

	cf := fl.Cafe()
	now := c.clock.Now()

	rec, err := redemption.NewRecord(
		c.ids.New(ident.PrefixRedemption),
		cf,
		redemption.GenerateCode(),
		now,
		c.cfg.CodeTTL,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := fl.CompleteRedeem(rec); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidFlowState)
	}

	sess.Records().AppendRedemption(rec)
	c.notifier.Success(sessionID, "Code Generated!",
		fmt.Sprintf("Show this code at %s within the next %d minutes.", cf.Name, int(c.cfg.CodeTTL.Minutes())))

	return &RedeemResult{Redemption: queries.NewRedemptionView(rec, now)}, nil
}

func (c *redemptionCommandsImpl) Close(_ context.Context, sessionID uuid.UUID) error {
	sess, err := c.sessions.Find(sessionID)
	if err != nil {
		return err
	}
	return sess.CloseFlow(c.cfg.ResetDelay, nil)
}
