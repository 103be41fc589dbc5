package catalog

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"vaxbook/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HomeLimit is how many vaccines the home listing shows.
const HomeLimit = 3

// PriceOnRequest is shown when a vaccine has no price.
const PriceOnRequest = "Liên hệ"

var pricePrinter = message.NewPrinter(language.English)

// FilterVaccines keeps vaccines whose name contains query, ignoring case and
// Vietnamese diacritics, in their original order. An empty query keeps
// everything. limit <= 0 means no limit.
func FilterVaccines(list []models.Vaccine, query string, limit int) []models.Vaccine {
	needle := fold(query)
	out := make([]models.Vaccine, 0, len(list))
	for _, v := range list {
		if limit > 0 && len(out) == limit {
			break
		}
		if needle == "" || strings.Contains(fold(v.Name), needle) {
			out = append(out, v)
		}
	}
	return out
}

// FormatPrice renders an amount with thousands separators, e.g. "850,000 VND".
func FormatPrice(a models.Amount) string {
	if a <= 0 {
		return PriceOnRequest
	}
	return pricePrinter.Sprintf("%d VND", int64(a))
}

// SortAppointments orders appointments newest first. Ties keep their order.
func SortAppointments(list []models.Appointment) []models.Appointment {
	out := append([]models.Appointment(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Upcoming returns pending or confirmed appointments after now, soonest first.
func Upcoming(list []models.Appointment, now time.Time) []models.Appointment {
	var out []models.Appointment
	for _, a := range list {
		if a.Status != models.StatusPending && a.Status != models.StatusConfirmed {
			continue
		}
		if a.Date.After(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)
	return strings.ToLower(strings.TrimSpace(folded))
}
