package collection

// CollectRule is a recurring weekly pickup slot for a cafe.
// Duplicate slots are allowed; rules are only ever appended.
type CollectRule struct {
	ID      int
	CafeID  int
	Weekday int
	Time    string
}

// Slot is one (weekday, time) pair of a rule creation request.
type Slot struct {
	Weekday int
	Time    string
}

// NewRules expands slots into rules for cafeID, preserving order.
func NewRules(cafeID int, slots []Slot) []*CollectRule {
	rules := make([]*CollectRule, 0, len(slots))
	for _, s := range slots {
		rules = append(rules, &CollectRule{
			CafeID:  cafeID,
			Weekday: s.Weekday,
			Time:    s.Time,
		})
	}
	return rules
}
