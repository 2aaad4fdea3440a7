package variant

// Separator is the sentinel label that partitions a product's flat variant
// list into dimensions. Slots holding the separator carry no stock.
const Separator = "BUFFER"

// Equals reports whether two variant labels are the same label.
// Labels are equal iff their byte content is identical; no prefix,
// substring or case-folding matching is performed.
func Equals(a, b string) bool {
	return a == b
}

// IsSeparator reports whether the label at a slot is the dimension separator.
func IsSeparator(label string) bool {
	return Equals(label, Separator)
}

// Dimensions partitions a flat label list into dimension groups.
// Each group holds the slot indices belonging to one dimension; separator
// slots belong to no group. A list with no separators is one dimension.
func Dimensions(labels []string) [][]int {
	dims := [][]int{}
	current := []int{}
	for i, label := range labels {
		if IsSeparator(label) {
			dims = append(dims, current)
			current = []int{}
			continue
		}
		current = append(current, i)
	}
	dims = append(dims, current)
	return dims
}

// MatchSlot locates the slot index of a label in the flat list, skipping
// separator slots. It returns false if no slot matches.
func MatchSlot(labels []string, label string) (int, bool) {
	if IsSeparator(label) {
		return 0, false
	}
	for i, candidate := range labels {
		if Equals(candidate, label) {
			return i, true
		}
	}
	return 0, false
}

// DimensionOf returns the index of the dimension group containing slot,
// or -1 if the slot is a separator or out of range.
func DimensionOf(dims [][]int, slot int) int {
	for d, group := range dims {
		for _, i := range group {
			if i == slot {
				return d
			}
		}
	}
	return -1
}
