// Package timezone resolves Windows time-zone display names (the strings
// used by LocalDate/NowSpecificTimeZone, see spec.md §4.G) to a fixed UTC
// offset. Windows zone names don't carry DST transition rules the way an
// IANA tzdata entry does, so each name here maps to a single, permanent
// offset — matching the original engine's behavior rather than a live
// *time.Location.
package timezone

import (
	"fmt"
	"sync"
	"time"
)

// offsets maps a Windows time-zone name to its UTC offset in minutes.
// Built once, lazily, and reused for every lookup.
var offsets = sync.OnceValue(func() map[string]int {
	return map[string]int{
		"Dateline Standard Time":             -12 * 60,
		"UTC-11":                             -11 * 60,
		"Aleutian Standard Time":             -10 * 60,
		"Hawaiian Standard Time":             -10 * 60,
		"Marquesas Standard Time":            -9*60 - 30,
		"Alaskan Standard Time":              -9 * 60,
		"UTC-09":                             -9 * 60,
		"Pacific Standard Time (Mexico)":     -8 * 60,
		"UTC-08":                             -8 * 60,
		"Pacific Standard Time":              -8 * 60,
		"US Mountain Standard Time":          -7 * 60,
		"Mountain Standard Time (Mexico)":    -7 * 60,
		"Mountain Standard Time":             -7 * 60,
		"Central America Standard Time":      -6 * 60,
		"Central Standard Time":              -6 * 60,
		"Easter Island Standard Time":        -6 * 60,
		"Central Standard Time (Mexico)":     -6 * 60,
		"Canada Central Standard Time":       -6 * 60,
		"SA Pacific Standard Time":           -5 * 60,
		"Eastern Standard Time (Mexico)":     -5 * 60,
		"Eastern Standard Time":              -5 * 60,
		"Haiti Standard Time":                -5 * 60,
		"Cuba Standard Time":                 -5 * 60,
		"US Eastern Standard Time":           -5 * 60,
		"Turks And Caicos Standard Time":     -5 * 60,
		"Paraguay Standard Time":             -4 * 60,
		"Atlantic Standard Time":             -4 * 60,
		"Venezuela Standard Time":            -4 * 60,
		"Central Brazilian Standard Time":    -4 * 60,
		"SA Western Standard Time":           -4 * 60,
		"Pacific SA Standard Time":           -4 * 60,
		"Newfoundland Standard Time":         -3*60 - 30,
		"Tocantins Standard Time":            -3 * 60,
		"E. South America Standard Time":     -3 * 60,
		"SA Eastern Standard Time":           -3 * 60,
		"Argentina Standard Time":            -3 * 60,
		"Greenland Standard Time":            -3 * 60,
		"Montevideo Standard Time":           -3 * 60,
		"Magallanes Standard Time":           -3 * 60,
		"Saint Pierre Standard Time":         -3 * 60,
		"Bahia Standard Time":                -3 * 60,
		"UTC-02":                             -2 * 60,
		"Mid-Atlantic Standard Time":         -2 * 60,
		"Azores Standard Time":               -1 * 60,
		"Cape Verde Standard Time":           -1 * 60,
		"UTC":                                0,
		"GMT Standard Time":                  0,
		"Greenwich Standard Time":            0,
		"Sao Tome Standard Time":             0,
		"Morocco Standard Time":              0,
		"W. Europe Standard Time":            1 * 60,
		"Central Europe Standard Time":       1 * 60,
		"Romance Standard Time":              1 * 60,
		"Central European Standard Time":     1 * 60,
		"W. Central Africa Standard Time":    1 * 60,
		"GTB Standard Time":                  2 * 60,
		"Middle East Standard Time":          2 * 60,
		"Egypt Standard Time":                2 * 60,
		"E. Europe Standard Time":            2 * 60,
		"Syria Standard Time":                2 * 60,
		"West Bank Standard Time":            2 * 60,
		"South Africa Standard Time":         2 * 60,
		"FLE Standard Time":                  2 * 60,
		"Israel Standard Time":               2 * 60,
		"Kaliningrad Standard Time":          2 * 60,
		"Sudan Standard Time":                2 * 60,
		"Libya Standard Time":                2 * 60,
		"Namibia Standard Time":              2 * 60,
		"Jordan Standard Time":               3 * 60,
		"Arabic Standard Time":               3 * 60,
		"Turkey Standard Time":               3 * 60,
		"Arab Standard Time":                 3 * 60,
		"Belarus Standard Time":              3 * 60,
		"Russian Standard Time":              3 * 60,
		"E. Africa Standard Time":            3 * 60,
		"Iran Standard Time":                 3*60 + 30,
		"Arabian Standard Time":              4 * 60,
		"Astrakhan Standard Time":            4 * 60,
		"Azerbaijan Standard Time":           4 * 60,
		"Russia Time Zone 3":                 4 * 60,
		"Mauritius Standard Time":            4 * 60,
		"Saratov Standard Time":              4 * 60,
		"Georgian Standard Time":             4 * 60,
		"Caucasus Standard Time":             4 * 60,
		"Afghanistan Standard Time":          4*60 + 30,
		"West Asia Standard Time":            5 * 60,
		"Ekaterinburg Standard Time":         5 * 60,
		"Pakistan Standard Time":             5 * 60,
		"Qyzylorda Standard Time":            5 * 60,
		"India Standard Time":                5*60 + 30,
		"Sri Lanka Standard Time":            5*60 + 30,
		"Nepal Standard Time":                5*60 + 45,
		"Central Asia Standard Time":         6 * 60,
		"Bangladesh Standard Time":           6 * 60,
		"Omsk Standard Time":                 6 * 60,
		"Myanmar Standard Time":              6*60 + 30,
		"SE Asia Standard Time":              7 * 60,
		"Altai Standard Time":                7 * 60,
		"W. Mongolia Standard Time":          7 * 60,
		"North Asia Standard Time":           7 * 60,
		"N. Central Asia Standard Time":      7 * 60,
		"Tomsk Standard Time":                7 * 60,
		"China Standard Time":                8 * 60,
		"North Asia East Standard Time":      8 * 60,
		"Singapore Standard Time":            8 * 60,
		"W. Australia Standard Time":         8 * 60,
		"Taipei Standard Time":               8 * 60,
		"Ulaanbaatar Standard Time":          8 * 60,
		"Aus Central W. Standard Time":       8*60 + 45,
		"Transbaikal Standard Time":          9 * 60,
		"Tokyo Standard Time":                9 * 60,
		"North Korea Standard Time":          9 * 60,
		"Korea Standard Time":                9 * 60,
		"Yakutsk Standard Time":              9 * 60,
		"Cen. Australia Standard Time":       9*60 + 30,
		"AUS Central Standard Time":          9*60 + 30,
		"E. Australia Standard Time":         10 * 60,
		"AUS Eastern Standard Time":          10 * 60,
		"West Pacific Standard Time":         10 * 60,
		"Tasmania Standard Time":             10 * 60,
		"Vladivostok Standard Time":          10 * 60,
		"Lord Howe Standard Time":            10*60 + 30,
		"Bougainville Standard Time":         11 * 60,
		"Russia Time Zone 10":                11 * 60,
		"Magadan Standard Time":              11 * 60,
		"Norfolk Standard Time":              11 * 60,
		"Sakhalin Standard Time":             11 * 60,
		"Central Pacific Standard Time":      11 * 60,
		"Russia Time Zone 11":                12 * 60,
		"New Zealand Standard Time":          12 * 60,
		"UTC+12":                             12 * 60,
		"Fiji Standard Time":                 12 * 60,
		"Kamchatka Standard Time":            12 * 60,
		"Chatham Islands Standard Time":      12*60 + 45,
		"UTC+13":                             13 * 60,
		"Tonga Standard Time":                13 * 60,
		"Samoa Standard Time":                13 * 60,
		"Line Islands Standard Time":         14 * 60,
	}
})

// Lookup resolves a Windows time-zone name to a fixed-offset *time.Location.
func Lookup(name string) (*time.Location, error) {
	minutes, ok := offsets()[name]
	if !ok {
		return nil, fmt.Errorf("Unable to find a time zone named '%s'", name)
	}
	return time.FixedZone(name, minutes*60), nil
}
