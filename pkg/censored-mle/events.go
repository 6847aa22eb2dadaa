package censoredmle

// EventIndex maps observation rows to compact event indices. Levels are
// ordered by first appearance in the input, and that ordering fixes the row
// order of the fitted intercept matrix.
type EventIndex struct {
	Levels []string // distinct labels, first-appearance order
	Rows   []int    // per-observation index into Levels
}

// NewEventIndex builds an index from per-observation event labels
func NewEventIndex(labels []string) *EventIndex {
	index := &EventIndex{
		Rows: make([]int, len(labels)),
	}

	seen := make(map[string]int)
	for i, label := range labels {
		level, ok := seen[label]
		if !ok {
			level = len(index.Levels)
			seen[label] = level
			index.Levels = append(index.Levels, label)
		}
		index.Rows[i] = level
	}

	return index
}

// NumEvents returns the number of distinct event labels
func (ix *EventIndex) NumEvents() int {
	return len(ix.Levels)
}

// RowsForEvent returns the observation rows assigned to one event level
func (ix *EventIndex) RowsForEvent(level int) []int {
	var rows []int
	for i, l := range ix.Rows {
		if l == level {
			rows = append(rows, i)
		}
	}
	return rows
}

// ExtractEventLevels gets distinct event labels in first-appearance order
func ExtractEventLevels(labels []string) []string {
	return NewEventIndex(labels).Levels
}
