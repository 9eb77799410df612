package collection

// Flag names a boolean field of T and knows how to read and write it.
type Flag[T any] struct {
	Name string
	Get  func(T) bool
	Set  func(T, bool) T
}

// FlagSet is the list of toggleable fields of a record type.
type FlagSet[T any] []Flag[T]

// Lookup finds the flag registered under name.
func (fs FlagSet[T]) Lookup(name string) (Flag[T], bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Flag[T]{}, false
}
