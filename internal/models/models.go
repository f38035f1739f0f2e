// Package models defines the domain entities for the trip-finance tracker.
package models

import (
	"errors"
	"time"
)

// Errors surfaced by the persistence layer.
var (
	// ErrDuplicateID is returned when a ledger append reuses an entry id
	// already taken for that owner, by any entry kind.
	ErrDuplicateID = errors.New("entry id already exists")

	// ErrNotFound is returned when the referenced owner or session does not exist.
	ErrNotFound = errors.New("not found")
)

// Account is the bucket a ledger entry or parameter belongs to.
type Account string

// The two accounts. Trip money and savings money never mix.
const (
	AccountTrip    Account = "trip"
	AccountSavings Account = "savings"
)

// Valid reports whether the account is one of the two known buckets.
func (a Account) Valid() bool {
	return a == AccountTrip || a == AccountSavings
}

// ExpenseCategory classifies an expense entry.
type ExpenseCategory string

// Expense categories.
const (
	ExpenseFood        ExpenseCategory = "Food"
	ExpenseAlcohol     ExpenseCategory = "Alcohol"
	ExpenseMetro       ExpenseCategory = "Metro"
	ExpenseAuto        ExpenseCategory = "Auto"
	ExpenseCab         ExpenseCategory = "Cab"
	ExpenseAttractions ExpenseCategory = "Attractions"
	ExpenseShopping    ExpenseCategory = "Shopping"
	ExpenseMisc        ExpenseCategory = "Misc"
)

// ExpenseCategories lists all expense categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseFood, ExpenseAlcohol, ExpenseMetro, ExpenseAuto,
	ExpenseCab, ExpenseAttractions, ExpenseShopping, ExpenseMisc,
}

// Valid reports whether the category is part of the fixed enumeration.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IncomeCategory classifies an income entry.
type IncomeCategory string

// Income categories.
const (
	IncomeFreelance     IncomeCategory = "Freelance project"
	IncomeInternship    IncomeCategory = "Internship stipend"
	IncomeReimbursement IncomeCategory = "Friend reimbursement"
	IncomeCustom        IncomeCategory = "Custom source"
)

// IncomeCategories lists all income categories in display order.
var IncomeCategories = []IncomeCategory{
	IncomeFreelance, IncomeInternship, IncomeReimbursement, IncomeCustom,
}

// Valid reports whether the category is part of the fixed enumeration.
func (c IncomeCategory) Valid() bool {
	for _, known := range IncomeCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PlaceCategory classifies a saved point of interest.
type PlaceCategory string

// Place categories.
const (
	PlaceStreetFood   PlaceCategory = "Street Food"
	PlaceCasualDining PlaceCategory = "Casual Dining"
	PlacePremium      PlaceCategory = "Premium"
	PlaceHotspot      PlaceCategory = "Hotspot"
)

// PlaceCategories lists all place categories in display order.
var PlaceCategories = []PlaceCategory{
	PlaceStreetFood, PlaceCasualDining, PlacePremium, PlaceHotspot,
}

// Valid reports whether the category is part of the fixed enumeration.
func (c PlaceCategory) Valid() bool {
	for _, known := range PlaceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Owner is an account holder. All other entities are scoped 1:1 to an owner.
type Owner struct {
	ID           string
	PasswordHash string
	CreatedAt    time.Time
}

// FixedParameters holds the eight scalar trip/savings inputs for one owner.
// The zero value is the defaults for an owner who never saved parameters.
// Amounts are whole currency units; negative values are accepted and flow
// through the balance formulas unchanged.
type FixedParameters struct {
	TotalBudget      int64 `json:"total_budget"`
	PlatinumTicket   int64 `json:"platinum_ticket"`
	PendingPlatinum  int64 `json:"pending_platinum"`
	FlightTotal      int64 `json:"flight_total"`
	MyFlightShare    int64 `json:"my_flight_share"`
	Stay             int64 `json:"stay"`
	ExpectedIncoming int64 `json:"expected_incoming"`
	BaseSavings      int64 `json:"base_savings"`
}

// Expense is a single spent amount, immutable once appended.
type Expense struct {
	EntryID   string          `json:"id"`
	OwnerID   string          `json:"-"`
	Title     string          `json:"title"`
	Amount    int64           `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Account   Account         `json:"account"`
	Date      string          `json:"date"` // calendar day, YYYY-MM-DD
	Time      string          `json:"time"` // clock time, HH:MM
	CreatedAt time.Time       `json:"created_at"`
}

// Income is a single received amount, immutable once appended.
type Income struct {
	EntryID   string         `json:"id"`
	OwnerID   string         `json:"-"`
	Title     string         `json:"title"`
	Amount    int64          `json:"amount"`
	Category  IncomeCategory `json:"category"`
	Account   Account        `json:"account"`
	Date      string         `json:"date"`
	CreatedAt time.Time      `json:"created_at"`
}

// Place is a saved point of interest. It carries no monetary value and is
// excluded from all balance math.
type Place struct {
	EntryID   string        `json:"id"`
	OwnerID   string        `json:"-"`
	Title     string        `json:"title"`
	Category  PlaceCategory `json:"category"`
	CreatedAt time.Time     `json:"created_at"`
}
