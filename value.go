package jsonly

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a closed tagged union over the six JSON variants. A Value owns its
// children exclusively; a node never appears under two parents. All numbers
// collapse to float64, string payloads hold decoded text.
type Value struct {
	kind  Kind
	b     bool
	num   float64
	text  string
	items []*Value
	obj   *Object
}

// Null returns a null Value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a boolean Value.
func NewBool(v bool) *Value {
	return &Value{kind: KindBool, b: v}
}

// NewNumber returns a numeric Value.
func NewNumber(v float64) *Value {
	return &Value{kind: KindNumber, num: v}
}

// NewString returns a string Value holding decoded text.
func NewString(text string) *Value {
	return &Value{kind: KindString, text: text}
}

// NewArray returns an array Value holding items in the supplied order.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// NewObject returns an empty object Value.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: &Object{}}
}

// Kind returns the variant tag.
func (v *Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload; false for any other kind.
func (v *Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Float returns the numeric payload; 0 for any other kind.
func (v *Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// Text returns the string payload; empty for any other kind.
func (v *Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Items returns the array elements in document order; nil for any other kind.
func (v *Value) Items() []*Value {
	return v.items
}

// Object returns the ordered key value mapping; nil for any other kind.
func (v *Value) Object() *Object {
	return v.obj
}

// Append adds items to the end of an array Value.
func (v *Value) Append(items ...*Value) {
	v.items = append(v.items, items...)
}

// Equal reports structural equality. Object comparison is order sensitive:
// two objects with the same pairs in different insertion order differ.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.text == b.text
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i, key := range a.obj.keys {
			if key != b.obj.keys[i] {
				return false
			}
			if !Equal(a.obj.values[i], b.obj.values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v as compact JSON text.
func (v *Value) String() string {
	return string(Stringify(v))
}
