package search

import "strings"

// cuisineLabels maps provider taxonomy tokens to display labels.
var cuisineLabels = map[string]string{
	"japanese_restaurant":   "Japanese",
	"chinese_restaurant":    "Chinese",
	"korean_restaurant":     "Korean",
	"thai_restaurant":       "Thai",
	"vietnamese_restaurant": "Vietnamese",
	"indian_restaurant":     "Indian",
	"asian_restaurant":      "Asian",

	"italian_restaurant":       "Italian",
	"french_restaurant":        "French",
	"spanish_restaurant":       "Spanish",
	"greek_restaurant":         "Greek",
	"mediterranean_restaurant": "Mediterranean",

	"american_restaurant":  "American",
	"mexican_restaurant":   "Mexican",
	"brazilian_restaurant": "Brazilian",

	"middle_eastern_restaurant": "Middle Eastern",
	"turkish_restaurant":        "Turkish",

	"seafood_restaurant":   "Seafood",
	"steakhouse":           "Steakhouse",
	"pizza_restaurant":     "Pizza",
	"bakery":               "Bakery",
	"cafe":                 "Cafe",
	"fast_food_restaurant": "Fast Food",
	"restaurant":           "Restaurant",
}

// NormalizeCuisines maps raw provider taxonomy tokens to display labels,
// deduplicated preserving first-occurrence order. Tokens without a mapping
// are title-cased with underscores replaced by spaces and a trailing
// "Restaurant" suffix dropped.
func NormalizeCuisines(rawTypes []string) []string {
	seen := make(map[string]struct{}, len(rawTypes))
	labels := make([]string, 0, len(rawTypes))
	for _, raw := range rawTypes {
		label := NormalizeCuisine(raw)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}

// NormalizeCuisine maps a single taxonomy token to its display label.
func NormalizeCuisine(raw string) string {
	if label, ok := cuisineLabels[raw]; ok {
		return label
	}
	return fallbackCuisineLabel(raw)
}

func fallbackCuisineLabel(raw string) string {
	words := strings.Split(strings.ReplaceAll(raw, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	label := strings.Join(words, " ")
	label = strings.TrimSuffix(label, " Restaurant")
	return strings.TrimSpace(label)
}
