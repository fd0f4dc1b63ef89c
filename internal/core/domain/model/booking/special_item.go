package booking

import (
	"strings"

	"shipping/internal/pkg/errs"
)

// SpecialItem is a declared item needing particular handling, e.g. {"laptop", 1}.
type SpecialItem struct {
	name     string
	quantity int
}

func NewSpecialItem(name string, quantity int) (SpecialItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SpecialItem{}, errs.NewValueIsRequiredError("special item name")
	}
	if quantity < 1 {
		return SpecialItem{}, errs.NewValueIsOutOfRangeError("special item quantity", quantity, 1, "unbounded")
	}
	return SpecialItem{name: name, quantity: quantity}, nil
}

func (i SpecialItem) Name() string {
	return i.name
}

func (i SpecialItem) Quantity() int {
	return i.quantity
}

// normalizeContentTypes trims labels and drops blanks and case-insensitive
// duplicates, keeping the first spelling seen.
func normalizeContentTypes(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		key := strings.ToLower(label)
		if label == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, label)
	}
	return result
}
