package model

// FirstMatch walks the tree in pre-order and returns the first element the
// predicate accepts, or nil.
func FirstMatch(elements []Element, match func(Element) bool) *Element {
	for i := range elements {
		if match(elements[i]) {
			found := elements[i]
			found.Children = nil
			return &found
		}
		if found := FirstMatch(elements[i].Children, match); found != nil {
			return found
		}
	}
	return nil
}
