package types

// FreshSupply is a monotonic counter producing unique type-variable
// identifiers, per spec.md §4.3. It is an explicit, per-run allocator
// rather than a package-level mutable counter (spec.md §9, "Global mutable
// counter"): a caller owns one FreshSupply per call to infer.Infer, so
// concurrent inference runs never share a counter. Identifiers are unique
// within one supply only; every supply starts again at 0.
type FreshSupply struct {
	next int
}

// NewFreshSupply returns a supply starting at 0.
func NewFreshSupply() *FreshSupply {
	return &FreshSupply{}
}

// Fresh returns the current value, then increments.
func (f *FreshSupply) Fresh() int {
	id := f.next
	f.next++
	return id
}

// FreshVar is a convenience wrapper returning Var(Fresh()).
func (f *FreshSupply) FreshVar() *Var {
	return NewVar(f.Fresh())
}

// Reset sets the counter back to zero.
func (f *FreshSupply) Reset() {
	f.next = 0
}
