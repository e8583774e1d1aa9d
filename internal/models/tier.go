package models

// TierRule maps an inclusive scan-count range to a named, coloured tier.
type TierRule struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// Fallback tier used when no rule matches.
const (
	NoTierTitle = "N/A"
	NoTierColor = "#fff"
)

var tierRules = [...]TierRule{
	{Min: 1, Max: 4, Title: "Tier 1", Color: "#b6f7b6"},
	{Min: 5, Max: 9, Title: "Tier 2", Color: "#fff7a6"},
	{Min: 10, Max: 14, Title: "Tier 3", Color: "#ffd8a6"},
	{Min: 15, Max: 9999, Title: "Tier 4", Color: "#ffb3b3"},
}

// TierRules returns a copy of the threshold table in match order.
func TierRules() []TierRule {
	rules := make([]TierRule, len(tierRules))
	copy(rules, tierRules[:])
	return rules
}

// ResolveTier returns the title and colour of the first rule containing count.
func ResolveTier(count int) (title, color string) {
	for _, rule := range tierRules {
		if rule.Min <= count && count <= rule.Max {
			return rule.Title, rule.Color
		}
	}
	return NoTierTitle, NoTierColor
}
