package attribute

// Properties control how an attribute takes part in store-wide operations.
type Properties struct {
	// Assignable attributes are updated by Store.AssignValue.
	Assignable bool
	// Interpolable attributes are updated by Store.InterpolateValue.
	Interpolable bool
	// Transferable attributes are carried over by Store.Import, for example
	// when collections are merged.
	Transferable bool
	// Persistent attributes are written to archives.
	Persistent bool
}

// DefaultProperties returns the properties of a plain data attribute:
// transferable and persistent, neither assignable nor interpolable.
func DefaultProperties() Properties {
	return Properties{Transferable: true, Persistent: true}
}

// InterpolableProperties returns DefaultProperties with Assignable and Interpolable set.
func InterpolableProperties() Properties {
	return Properties{Assignable: true, Interpolable: true, Transferable: true, Persistent: true}
}
