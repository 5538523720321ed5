package caption

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// scripts written right to left
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
}

// DirectionFor derives the text direction of a BCP 47 tag from its script,
// inferring the script when the tag does not carry one.
func DirectionFor(tag language.Tag) Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return DirectionRTL
	}
	return DirectionLTR
}

// ParseLanguage accepts a literal direction ("ltr", "rtl") or a language tag.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	switch Direction(strings.ToLower(s)) {
	case "":
		return DefaultLanguage(), nil
	case DirectionLTR:
		return Language{Direction: DirectionLTR}, nil
	case DirectionRTL:
		return Language{Direction: DirectionRTL}, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, fmt.Errorf("invalid language %q: %w", s, err)
	}

	return Language{Code: tag.String(), Direction: DirectionFor(tag)}, nil
}
