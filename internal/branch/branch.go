// Package branch parses and classifies branch names under the
// <YYMMDD><r|f|b>-<description> naming convention.
//
// A conforming name starts with a six digit date, followed by a single
// type marker ('r' for release, 'f' for feature, 'b' for bugfix), a
// hyphen, and a free-form description. Child branches append a double
// hyphen and their own description to the full parent name, e.g.
// 220622f-parent--child.
package branch

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Type is the semantic category encoded by a branch's type marker.
type Type int

const (
	// TypeUnknown marks branches that do not follow the naming
	// convention. It is a legitimate value, not an error state.
	TypeUnknown Type = iota
	TypeRelease
	TypeFeature
	TypeBugFix
)

// typesByMarker maps the single-character markers of the grammar to
// their Type.
var typesByMarker = map[string]Type{
	"r": TypeRelease,
	"f": TypeFeature,
	"b": TypeBugFix,
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	switch t {
	case TypeRelease:
		return "release"
	case TypeFeature:
		return "feature"
	case TypeBugFix:
		return "bugfix"
	case TypeUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Marker returns the single-character marker used in branch names.
// TypeUnknown has no marker; it is never written into a name.
func (t Type) Marker() (string, error) {
	switch t {
	case TypeRelease:
		return "r", nil
	case TypeFeature:
		return "f", nil
	case TypeBugFix:
		return "b", nil
	case TypeUnknown:
		return "", fmt.Errorf("unknown branch type has no marker")
	}
	return "", &InvalidTypeError{Type: t}
}

// ParseType maps a type name ("release", "feature", "bugfix") or its
// single-character marker to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "r", "release":
		return TypeRelease, nil
	case "f", "feature":
		return TypeFeature, nil
	case "b", "bugfix":
		return TypeBugFix, nil
	case "unknown":
		return TypeUnknown, nil
	}
	return TypeUnknown, fmt.Errorf("unknown branch type %q (want release, feature or bugfix)", s)
}

// namePattern is the anchored grammar for conforming branch names:
// six date digits, one type marker, a hyphen, then the description.
var namePattern = regexp.MustCompile(`^(?P<date>\d{6})(?P<type>[rfb])-(?P<description>[-\w]+)$`)

// Branch is an immutable view of a parsed branch name. All validation
// happens before construction; a Branch never holds a partially valid
// state.
type Branch struct {
	date        int
	typ         Type
	description string
	name        string
}

// Parse parses raw against the naming grammar.
//
// In strict mode a non-conforming name (or a name with an impossible
// date) fails with a typed error. In non-strict mode parsing never
// fails: non-conforming names produce a TypeUnknown branch dated today
// whose description is the raw input, so callers can handle branches
// created outside the convention (main, master, tool-generated names).
//
// In both modes Name() returns raw verbatim.
func Parse(raw string, strict bool) (Branch, error) {
	m := namePattern.FindStringSubmatch(raw)
	if m == nil {
		if strict {
			return Branch{}, &InvalidNameError{Name: raw}
		}
		return unknown(raw), nil
	}

	date, err := strconv.Atoi(m[namePattern.SubexpIndex("date")])
	if err != nil {
		// Unreachable: the pattern guarantees six digits.
		return Branch{}, &InvalidNameError{Name: raw}
	}
	if err := ValidateDate(date); err != nil {
		if strict {
			return Branch{}, err
		}
		// A conforming shape with an impossible date is still a
		// foreign name; degrade the same way a grammar miss does.
		return unknown(raw), nil
	}

	return Branch{
		date:        date,
		typ:         typesByMarker[m[namePattern.SubexpIndex("type")]],
		description: m[namePattern.SubexpIndex("description")],
		name:        raw,
	}, nil
}

// unknown builds the non-strict fallback branch for a name outside the
// convention.
func unknown(raw string) Branch {
	return Branch{
		date:        Today(),
		typ:         TypeUnknown,
		description: raw,
		name:        raw,
	}
}

// Today returns the current local date in YYMMDD form.
func Today() int {
	now := time.Now()
	return (now.Year()%100)*10000 + int(now.Month())*100 + now.Day()
}

// ValidateDate checks a YYMMDD date: year 22 or later, month 1-12, day
// within the month (leap years accounted for). Two-digit years map to
// 2000+YY.
func ValidateDate(date int) error {
	if date < 0 || date > 991231 {
		return &InvalidDateError{Date: date, Reason: "not a six digit YYMMDD value"}
	}

	year := date / 10000
	month := date / 100 % 100
	day := date % 100

	if year < 22 {
		return &InvalidDateError{Date: date, Reason: fmt.Sprintf("year %02d predates 2022", year)}
	}
	if month < 1 || month > 12 {
		return &InvalidDateError{Date: date, Reason: fmt.Sprintf("month %02d out of range", month)}
	}
	if day < 1 || day > daysInMonth(2000+year, month) {
		return &InvalidDateError{Date: date, Reason: fmt.Sprintf("day %02d out of range for month %02d", day, month)}
	}
	return nil
}

// daysInMonth returns the number of days in the given month of a full
// (four digit) year.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}

// Date returns the branch date in YYMMDD form.
func (b Branch) Date() int { return b.date }

// Type returns the branch's semantic category.
func (b Branch) Type() Type { return b.typ }

// Description returns the free-form part of the name. For TypeUnknown
// branches it is the entire raw input.
func (b Branch) Description() string { return b.description }

// Name returns the exact string the branch was constructed from.
func (b Branch) Name() string { return b.name }

// IsRelease reports whether the branch is a release branch.
func (b Branch) IsRelease() bool { return b.typ == TypeRelease }

// IsFeature reports whether the branch is a feature branch.
func (b Branch) IsFeature() bool { return b.typ == TypeFeature }

// IsBugFix reports whether the branch is a bugfix branch.
func (b Branch) IsBugFix() bool { return b.typ == TypeBugFix }

// IsTypeUnknown reports whether the branch was built through the
// non-strict fallback.
func (b Branch) IsTypeUnknown() bool { return b.typ == TypeUnknown }
