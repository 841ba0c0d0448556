package prompt

import (
	"errors"
	"regexp"
	"strings"
)

const (
	EthosFuturisticGlass = "Futuristic Glass"
	EthosMinimalistDark  = "Minimalist Dark"
	EthosCorporateNeo    = "Corporate Neo"

	DefaultTitle       = "Portfolio 2026"
	DefaultAccentColor = "#ec4899"
)

// Ethoses lists the design directions offered to the user, in display order.
var Ethoses = []string{EthosFuturisticGlass, EthosMinimalistDark, EthosCorporateNeo}

var (
	ErrUnknownEthos = errors.New("unknown design ethos")
	ErrAccentColor  = errors.New("accent color must be #rrggbb")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// StyleParameters carries the user's styling choices into the prompt.
type StyleParameters struct {
	Title        string `json:"title"`
	Ethos        string `json:"ethos"`
	AccentColor  string `json:"accentColor"`
	Instructions string `json:"instructions"`
}

// Normalize fills blank fields with defaults and validates the constrained ones.
func (p StyleParameters) Normalize() (StyleParameters, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	p.Ethos = strings.TrimSpace(p.Ethos)
	if p.Ethos == "" {
		p.Ethos = EthosFuturisticGlass
	}
	if !knownEthos(p.Ethos) {
		return StyleParameters{}, ErrUnknownEthos
	}
	p.AccentColor = strings.TrimSpace(p.AccentColor)
	if p.AccentColor == "" {
		p.AccentColor = DefaultAccentColor
	}
	if !hexColor.MatchString(p.AccentColor) {
		return StyleParameters{}, ErrAccentColor
	}
	return p, nil
}

func knownEthos(ethos string) bool {
	for _, e := range Ethoses {
		if e == ethos {
			return true
		}
	}
	return false
}
