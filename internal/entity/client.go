package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Client is the platform's client record as delivered by the clients
// service. The schedule service never writes clients, it only observes
// before/after snapshots of them.
type Client struct {
	ID                   uuid.UUID
	Name                 string
	Address              string
	ContractDays         []time.Weekday
	AssignedEmployeeID   *uuid.UUID
	AssignedEmployeeName string
	VisitPrice           decimal.Decimal
}

// HasContractDay reports whether d's weekday is in the client's contract.
func (c Client) HasContractDay(d time.Time) bool {
	for _, wd := range c.ContractDays {
		if wd == d.Weekday() {
			return true
		}
	}

	return false
}

// SameContractDays compares contract-day sets ignoring order and duplicates.
func (c Client) SameContractDays(other Client) bool {
	return weekdaySet(c.ContractDays) == weekdaySet(other.ContractDays)
}

// SameAssignment reports whether both clients carry the same employee
// assignment. Two unassigned clients compare equal.
func (c Client) SameAssignment(other Client) bool {
	if (c.AssignedEmployeeID == nil) != (other.AssignedEmployeeID == nil) {
		return false
	}

	if c.AssignedEmployeeID == nil {
		return true
	}

	return *c.AssignedEmployeeID == *other.AssignedEmployeeID
}

func weekdaySet(days []time.Weekday) [7]bool {
	var set [7]bool

	for _, d := range days {
		if d >= 0 && d <= time.Saturday {
			set[d] = true
		}
	}

	return set
}
