package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Formula represents a parsed dice formula ready to be rolled.
// Supported forms: "d20", "2d6", "2d6+3", "1d4-1", "1d6*10", and flat
// values like "25". The zero value (or empty string) rolls 0.
// Precondition: Count >= 1, Sides >= 2 after a successful parse of a
// dice form; flat values have Sides == 0.
type Formula struct {
	Raw        string // original input string
	Count      int    // number of dice
	Sides      int    // faces per die
	Modifier   int    // flat modifier (may be negative)
	Multiplier int    // if > 1, multiply the rolled total (e.g. 1d6*10)
}

// ParseFormula parses a dice formula string.
// Postcondition: returns a Formula or a descriptive error.
func ParseFormula(expr string) (Formula, error) {
	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Formula{}, nil
	}

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		// Flat value.
		flat, err := strconv.Atoi(s)
		if err != nil {
			return Formula{}, fmt.Errorf("dice: invalid formula %q: %w", raw, err)
		}
		if flat < 0 {
			return Formula{}, fmt.Errorf("dice: invalid formula %q: must be >= 0", raw)
		}
		return Formula{Raw: raw, Modifier: flat}, nil
	}

	// Parse count (the part before 'd'); defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Formula{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Formula{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	// Everything after 'd'.
	rest := s[dIdx+1:]

	// Extract a multiplier suffix ("*<N>") before any modifier check.
	multiplier := 1
	if mulIdx := strings.Index(rest, "*"); mulIdx >= 0 {
		mul, err := strconv.Atoi(rest[mulIdx+1:])
		if err != nil {
			return Formula{}, fmt.Errorf("dice: invalid multiplier in %q: %w", raw, err)
		}
		if mul < 1 {
			return Formula{}, fmt.Errorf("dice: invalid multiplier in %q: must be >= 1", raw)
		}
		multiplier = mul
		rest = rest[:mulIdx]
	}

	// Parse sides and optional modifier; the first '+' or '-' past
	// position 0 splits them.
	modOffset := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == '+' || rest[i] == '-' {
			modOffset = i
			break
		}
	}

	sidesStr, modStr := rest, ""
	if modOffset >= 0 {
		sidesStr = rest[:modOffset]
		modStr = rest[modOffset:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Formula{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Formula{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Formula{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Formula{
		Raw:        raw,
		Count:      count,
		Sides:      sides,
		Modifier:   modifier,
		Multiplier: multiplier,
	}, nil
}

// MustFormula parses a formula and panics on error. For static tables.
func MustFormula(expr string) Formula {
	f, err := ParseFormula(expr)
	if err != nil {
		panic(err)
	}
	return f
}

// Roll evaluates the formula with the given roller.
func (f Formula) Roll(r Roller) (int, error) {
	if f.Sides == 0 {
		return f.Modifier, nil
	}

	result, err := r.Roll(f.Count, f.Sides, f.Modifier)
	if err != nil {
		return 0, err
	}

	total := result.Total
	if f.Multiplier > 1 {
		total *= f.Multiplier
	}
	return total, nil
}

// IsZero reports whether the formula rolls nothing.
func (f Formula) IsZero() bool {
	return f.Sides == 0 && f.Modifier == 0
}

// Max returns the largest value the formula can roll.
func (f Formula) Max() int {
	if f.Sides == 0 {
		return f.Modifier
	}
	total := f.Count*f.Sides + f.Modifier
	if f.Multiplier > 1 {
		total *= f.Multiplier
	}
	return total
}

// String returns the canonical formula text.
func (f Formula) String() string {
	if f.Raw != "" {
		return f.Raw
	}
	if f.Sides == 0 {
		return strconv.Itoa(f.Modifier)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%dd%d", f.Count, f.Sides)
	if f.Modifier != 0 {
		fmt.Fprintf(&sb, "%+d", f.Modifier)
	}
	if f.Multiplier > 1 {
		fmt.Fprintf(&sb, "*%d", f.Multiplier)
	}
	return sb.String()
}

// MarshalText encodes the formula as its string form.
func (f Formula) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses the formula from its string form.
func (f *Formula) UnmarshalText(text []byte) error {
	parsed, err := ParseFormula(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
