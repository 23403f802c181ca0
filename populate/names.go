package populate

import (
	"fmt"
	"strconv"
)

// NameFn produces a user's display name from its zero-based creation index.
// It must be pure: the same idx always yields the same name.
type NameFn func(idx int) string

// DefaultName returns the decimal index, e.g. 0→"0", 41→"41".
func DefaultName(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedName returns prefix + decimal index, e.g. "user0", "user1", ...
// Panics if idx < 0.
func PrefixedName(prefix string) NameFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedName: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnName returns the spreadsheet-style column label for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnName: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// NameSchemeByName resolves "decimal", "user" (PrefixedName("user")) or
// "excel". The empty string maps to DefaultName.
func NameSchemeByName(name string) (NameFn, error) {
	switch name {
	case "", "decimal":
		return DefaultName, nil
	case "user":
		return PrefixedName("user"), nil
	case "excel":
		return ExcelColumnName, nil
	default:
		return nil, fmt.Errorf("%w: name scheme %q", ErrInvalidParameter, name)
	}
}
