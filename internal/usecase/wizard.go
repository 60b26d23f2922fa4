package usecase

import (
	"context"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrWizardNotFound = errs.New("wizard instance not found")

// WizardStore keeps live wizard instances between HTTP requests. The
// in-memory implementation hands out per-instance locks so that at most one
// request drives a given wizard at a time.
type WizardStore interface {
	Put(w *booking.Wizard)
	// Acquire returns the wizard locked for exclusive use; the caller must
	// call release when done.
	Acquire(id uuid.UUID) (w *booking.Wizard, release func(), ok bool)
}

// WizardService creates reservation wizards wired to the live catalog and
// the booking pipeline.
type WizardService interface {
	StartWizard(ctx context.Context) (*booking.Wizard, error)
	Acquire(id uuid.UUID) (*booking.Wizard, func(), error)
}

type wizardServiceImpl struct {
	rooms    queries.RoomQueries
	calc     booking.PriceCalculator
	clock    clock.Clock
	commands commands.BookingCommands
	store    WizardStore
}

func NewWizardService(
	rooms queries.RoomQueries,
	calc booking.PriceCalculator,
	clk clock.Clock,
	bookingCommands commands.BookingCommands,
	store WizardStore,
) WizardService {
	return &wizardServiceImpl{
		rooms:    rooms,
		calc:     calc,
		clock:    clk,
		commands: bookingCommands,
		store:    store,
	}
}

// StartWizard snapshots the catalog for the new instance. The snapshot is
// immutable for the lifetime of the attempt; a stale rate is resolved by the
// user starting over, exactly as a stale page would be.
func (s *wizardServiceImpl) StartWizard(ctx context.Context) (*booking.Wizard, error) {
	catalog, err := s.rooms.Catalog(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to snapshot catalog for wizard")
	}

	w := booking.NewWizard(catalog, s.calc, s.clock, &commandSubmitter{commands: s.commands})
	s.store.Put(w)
	return w, nil
}

func (s *wizardServiceImpl) Acquire(id uuid.UUID) (*booking.Wizard, func(), error) {
	w, release, ok := s.store.Acquire(id)
	if !ok {
		return nil, nil, ErrWizardNotFound
	}
	return w, release, nil
}

// commandSubmitter adapts BookingCommands to the wizard's Submitter port.
// The view result is discarded: the wizard only needs success/failure, and
// the conflict mark travels on the error.
type commandSubmitter struct {
	commands commands.BookingCommands
}

func (a *commandSubmitter) Submit(ctx context.Context, req booking.ReservationRequest) error {
	_, err := a.commands.CreateReservation(ctx, req)
	return err
}
