package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type taskCompare func(a, b domain.Task) int

var taskComparators = map[domain.SortField]taskCompare{
	domain.SortByPriority:    func(a, b domain.Task) int { return cmp.Compare(a.Priority, b.Priority) },
	domain.SortByID:          func(a, b domain.Task) int { return cmp.Compare(a.ID, b.ID) },
	domain.SortByDescription: func(a, b domain.Task) int { return strings.Compare(a.Description, b.Description) },
	domain.SortByStatus:      func(a, b domain.Task) int { return compareBool(a.Done, b.Done) },
	domain.SortByInsertion: func(a, b domain.Task) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	},
}

// pending sorts before done.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// ParseSortKeys parses "field[:order],..." such as
// "priority:desc,description". Order defaults to asc. An empty string gives
// no keys.
func ParseSortKeys(s string) ([]domain.SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var keys []domain.SortKey
	for part := range strings.SplitSeq(s, ",") {
		field, order, hasOrder := strings.Cut(strings.TrimSpace(part), ":")

		key := domain.SortKey{Field: domain.SortField(strings.TrimSpace(field)), Order: domain.Asc}
		if _, ok := taskComparators[key.Field]; !ok {
			return nil, domain.Validationf("unknown sort key %q", field)
		}

		if hasOrder {
			switch o := domain.SortOrder(strings.ToLower(strings.TrimSpace(order))); o {
			case domain.Asc, domain.Desc:
				key.Order = o
			default:
				return nil, domain.Validationf("unknown sort order %q", order)
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// SortTasks orders tasks in place. Earlier keys take precedence and ties
// keep their existing relative order.
func SortTasks(tasks []domain.Task, keys ...domain.SortKey) {
	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		for _, k := range keys {
			compare, ok := taskComparators[k.Field]
			if !ok {
				continue
			}
			c := compare(a, b)
			if k.Order == domain.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}
