package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// UseCase computes the annotated slot list for one date and one selection
// shape. Reserved times are fetched fresh on every execution: a stale slot
// view must never be reused, so there is no caching layer here. Identical
// concurrent computations are collapsed through singleflight.
type UseCase struct {
	catalog      CatalogClient
	reservations ReservationsClient
	hours        domain.BusinessHours
	timeProvider TimeProvider
	group        singleflight.Group
	logger       Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	catalog CatalogClient,
	reservations ReservationsClient,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		reservations: reservations,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the availability computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Reject past dates
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Collapse identical concurrent computations. The result is shared
	// between waiters and must be treated as read-only.
	result, err, _ := uc.group.Do(requestKey(req), func() (interface{}, error) {
		return uc.compute(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Response), nil
}

func (uc *UseCase) compute(ctx context.Context, req *Request) (*Response, error) {
	// Fetch the menu detail and the reserved-time set in parallel; neither
	// depends on the other.
	var (
		menu     *domain.Menu
		reserved []types.TimeString
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := uc.catalog.GetMenu(gctx, req.MenuID)
		if err != nil {
			if errors.Is(err, salonapi.ErrNotFound) {
				return fmt.Errorf("%w: id=%d", ErrMenuNotFound, req.MenuID)
			}
			return classifyUpstream("get menu", err)
		}
		menu = m
		return nil
	})
	g.Go(func() error {
		times, err := uc.reservations.GetReservedTimes(gctx, req.Date)
		if err != nil {
			return classifyUpstream("get reserved times", err)
		}
		reserved = times
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailability: fetch failed: menu=%d, date=%s: %v",
			req.MenuID, req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// Every toggled option must belong to the menu.
	if err := validateOptions(menu, req.OptionIDs); err != nil {
		uc.logger.Warn("GetAvailability: %v", err)
		return nil, err
	}

	// Derive the selection totals and run-length.
	totalPrice := menu.BasePrice
	totalDuration := menu.DurationMinutes
	for _, id := range req.OptionIDs {
		opt, _ := menu.Option(id)
		totalPrice += opt.Price
		totalDuration += opt.AdditionalMinutes
	}
	requiredSlots := domain.CalculateRequiredSlots(totalDuration, uc.hours.SlotMinutes)

	// The core computation: generate, mark reserved, compute startability.
	slots := domain.AvailableSlots(uc.hours, reserved, requiredSlots)

	uc.logger.Info("GetAvailability: menu=%d, date=%s, options=%d, requiredSlots=%d, reserved=%d",
		req.MenuID, req.Date.Format(domain.DateFormat), len(req.OptionIDs), requiredSlots, len(reserved))

	return &Response{
		Date:                 req.Date,
		MenuID:               req.MenuID,
		TotalPrice:           totalPrice,
		TotalDurationMinutes: totalDuration,
		RequiredSlots:        requiredSlots,
		Slots:                fromDomainSlots(slots),
	}, nil
}

// requestKey builds the singleflight key: date, menu and the sorted option
// set fully determine the computation.
func requestKey(req *Request) string {
	ids := append([]int64(nil), req.OptionIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	b.WriteString(req.Date.Format(domain.DateFormat))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(req.MenuID, 10))
	for _, id := range ids {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

func classifyUpstream(op string, err error) error {
	if errors.Is(err, salonapi.ErrUnavailable) {
		return fmt.Errorf("%w: failed to %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
