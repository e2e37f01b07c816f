package cart

import (
	"strings"

	"curaone-backend/internal/models"
)

// FilterTests narrows the catalog by name substring and exact category.
// Empty arguments match everything; no fuzzy matching.
func FilterTests(tests []models.LabTest, term, category string) []models.LabTest {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.LabTest, 0, len(tests))
	for _, t := range tests {
		if term != "" && !strings.Contains(strings.ToLower(t.Name), term) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}
