// Package roster holds the closed character roster and approximate-name
// matching used to recover from misspelled identifiers.
package roster

import "strings"

// characters is the fixed roster, in canonical order. Names are lowercase
// and hyphen-separated, matching the frame-data provider's identifiers.
var characters = []string{
	"alisa",
	"anna",
	"armor-king",
	"asuka",
	"azucena",
	"bryan",
	"claudio",
	"clive",
	"devil-jin",
	"dragunov",
	"eddy",
	"fahkumram",
	"feng",
	"heihachi",
	"hwoarang",
	"jack-8",
	"jin",
	"jun",
	"kazuya",
	"king",
	"kuma",
	"lars",
	"law",
	"lee",
	"leo",
	"leroy",
	"lidia",
	"lili",
	"nina",
	"panda",
	"paul",
	"raven",
	"reina",
	"shaheen",
	"steve",
	"victor",
	"xiaoyu",
	"yoshimitsu",
	"zafina",
}

// Characters returns a snapshot of the roster in canonical order.
func Characters() []string {
	out := make([]string, len(characters))
	copy(out, characters)
	return out
}

// Valid reports whether name is a roster member, case-insensitively.
func Valid(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range characters {
		if c == name {
			return true
		}
	}
	return false
}
