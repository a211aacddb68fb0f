package node

// DispatcherEnum selects the builder for a reflect.Type, see Dispatch.
type DispatcherEnum int

const (
	DispatcherUnknown   DispatcherEnum = iota // func, chan, complex and unsafe pointers
	DispatcherPrimitive                       // bool and numbers
	DispatcherString
	DispatcherInterface
	DispatcherSlice // slices and arrays
	DispatcherMap
	DispatcherStruct
	DispatcherPointer

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
