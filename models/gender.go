package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Gender is the canonical code the backend expects.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var genderLabels = map[string]Gender{
	"male":    GenderMale,
	"m":       GenderMale,
	"boy":     GenderMale,
	"nam":     GenderMale,
	"trai":    GenderMale,
	"be trai": GenderMale,
	"female":  GenderFemale,
	"f":       GenderFemale,
	"girl":    GenderFemale,
	"nu":      GenderFemale,
	"gai":     GenderFemale,
	"be gai":  GenderFemale,
}

// ParseGender maps a localized label ("Nam", "Nữ", "Male", "girl", ...) to
// its canonical code. Matching ignores case, accents and surrounding space.
func ParseGender(label string) (Gender, error) {
	key := foldLabel(label)
	if g, ok := genderLabels[key]; ok {
		return g, nil
	}
	return "", fmt.Errorf("unknown gender %q", label)
}

// Valid reports whether g is one of the canonical codes.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// UnmarshalJSON normalizes whatever label the backend stored. Unknown labels
// are kept verbatim rather than failing the whole document.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := ParseGender(s); err == nil {
		*g = parsed
		return nil
	}
	*g = Gender(s)
	return nil
}

func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
