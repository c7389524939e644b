package ir

import "fmt"

// Kind identifies the variant of a [Value].
type Kind int

const (
	IntKind Kind = iota
	FloatKind
	StringKind
	EnumKind
	VectorKind
	TensorKind
	DimSetKind
	ListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntKind:    "Int",
		FloatKind:  "Float",
		StringKind: "String",
		EnumKind:   "Enum",
		VectorKind: "Vector",
		TensorKind: "Tensor",
		DimSetKind: "DimSet",
		ListKind:   "List",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Int":    IntKind,
		"Float":  FloatKind,
		"String": StringKind,
		"Enum":   EnumKind,
		"Vector": VectorKind,
		"Tensor": TensorKind,
		"DimSet": DimSetKind,
		"List":   ListKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		IntKind,
		FloatKind,
		StringKind,
		EnumKind,
		VectorKind,
		TensorKind,
		DimSetKind,
		ListKind,
	}
}

func (k Kind) IsScalar() bool {
	switch k {
	case IntKind, FloatKind, StringKind, EnumKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsNumber() bool {
	return k == IntKind || k == FloatKind
}
