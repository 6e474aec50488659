package classifier

import (
	"strings"

	"atomatlas/internal/domain"
)

// Rule maps a keyword group to one type category. Rules are evaluated in
// slice order and the first match wins, so a model string hitting several
// groups always resolves to the earliest one.
type Rule struct {
	Category string
	Keywords []string
}

var rules = []Rule{
	{Category: domain.TypePWR, Keywords: []string{"PWR", "PRESSURIZED"}},
	{Category: domain.TypeBWR, Keywords: []string{"BWR", "BOILING"}},
	{Category: domain.TypePHWR, Keywords: []string{"PHWR", "CANDU"}},
	{Category: domain.TypeGCR, Keywords: []string{"GCR", "GAS", "AGR"}},
	{Category: domain.TypeLWGR, Keywords: []string{"LWGR", "RBMK"}},
	{Category: domain.TypeFBR, Keywords: []string{"FBR", "FAST"}},
}

// Rules exposes the taxonomy in priority order, for the encyclopedia view.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify derives a type category from a free-text model string. The empty
// result means no keyword group matched.
func Classify(model string) string {
	upper := strings.ToUpper(model)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, keyword) {
				return rule.Category
			}
		}
	}

	return ""
}
