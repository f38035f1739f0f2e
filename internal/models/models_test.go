package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountValid(t *testing.T) {
	require.True(t, AccountTrip.Valid())
	require.True(t, AccountSavings.Valid())
	require.False(t, Account("checking").Valid())
	require.False(t, Account("").Valid())
}

func TestExpenseCategoryValid(t *testing.T) {
	for _, cat := range ExpenseCategories {
		require.True(t, cat.Valid(), "category %q should be valid", cat)
	}
	require.Len(t, ExpenseCategories, 8)
	require.False(t, ExpenseCategory("Groceries").Valid())
	require.False(t, ExpenseCategory("food").Valid(), "categories are case sensitive")
}

func TestIncomeCategoryValid(t *testing.T) {
	for _, cat := range IncomeCategories {
		require.True(t, cat.Valid(), "category %q should be valid", cat)
	}
	require.Len(t, IncomeCategories, 4)
	require.False(t, IncomeCategory("Salary").Valid())
}

func TestPlaceCategoryValid(t *testing.T) {
	for _, cat := range PlaceCategories {
		require.True(t, cat.Valid(), "category %q should be valid", cat)
	}
	require.Len(t, PlaceCategories, 4)
	require.False(t, PlaceCategory("Dive Bar").Valid())
}

func TestFixedParametersZeroValue(t *testing.T) {
	var p FixedParameters
	require.Zero(t, p.TotalBudget)
	require.Zero(t, p.BaseSavings)
}
