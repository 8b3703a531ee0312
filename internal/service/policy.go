package service

import (
	"fmt"
	"strconv"
	"strings"
)

// TicketPolicy bounds the number of tickets a single booking may request.
// A fixed policy has Min == Max.
type TicketPolicy struct {
	Min int
	Max int
}

func FixedTickets(n int) TicketPolicy {
	return TicketPolicy{Min: n, Max: n}
}

func SelectableTickets(min, max int) TicketPolicy {
	return TicketPolicy{Min: min, Max: max}
}

// ParseTicketPolicy accepts "fixed:<n>" or "selectable:<min>:<max>".
func ParseTicketPolicy(s string) (TicketPolicy, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	nums := make([]int, 0, 2)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TicketPolicy{}, fmt.Errorf("ticket policy %q: %w", s, err)
		}
		nums = append(nums, n)
	}

	var p TicketPolicy
	switch {
	case parts[0] == "fixed" && len(nums) == 1:
		p = FixedTickets(nums[0])
	case parts[0] == "selectable" && len(nums) == 2:
		p = SelectableTickets(nums[0], nums[1])
	default:
		return TicketPolicy{}, fmt.Errorf("ticket policy %q: want fixed:<n> or selectable:<min>:<max>", s)
	}
	if p.Min < 1 || p.Max < p.Min {
		return TicketPolicy{}, fmt.Errorf("ticket policy %q: bounds must satisfy 1 <= min <= max", s)
	}
	return p, nil
}

func (p TicketPolicy) Fixed() bool {
	return p.Min == p.Max
}

// Resolve returns the ticket count to store. An omitted count takes the
// policy minimum.
func (p TicketPolicy) Resolve(requested *int) (int, error) {
	if requested == nil {
		return p.Min, nil
	}
	n := *requested
	if n < p.Min || n > p.Max {
		if p.Fixed() {
			return 0, validationErrorf("numberOfTickets must be %d", p.Min)
		}
		return 0, validationErrorf("numberOfTickets must be between %d and %d", p.Min, p.Max)
	}
	return n, nil
}

func (p TicketPolicy) String() string {
	if p.Fixed() {
		return fmt.Sprintf("fixed:%d", p.Min)
	}
	return fmt.Sprintf("selectable:%d:%d", p.Min, p.Max)
}

// DeletePolicy decides what happens to a user's bookings when an admin
// deletes the user.
type DeletePolicy string

const (
	DeleteKeepBookings    DeletePolicy = "keep"
	DeleteCascadeBookings DeletePolicy = "cascade"
	DeleteForbidBookings  DeletePolicy = "forbid"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DeleteKeepBookings, DeleteCascadeBookings, DeleteForbidBookings:
		return p, nil
	default:
		return "", fmt.Errorf("user delete policy %q: want keep, cascade or forbid", s)
	}
}
