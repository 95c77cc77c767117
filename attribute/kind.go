package attribute

import "fmt"

// Kind identifies the storage variant of an attribute.
type Kind uint8

const (
	KindConstant Kind = iota + 1
	KindVariable
	KindSparse
	KindComputed
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindSparse:
		return "sparse"
	case KindComputed:
		return "computed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
