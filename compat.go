package jsonly

// MarshalJSON implements json.Marshaler. Note the deliberate escape
// asymmetry: tab bytes are emitted raw.
func (v *Value) MarshalJSON() ([]byte, error) {
	return Stringify(v), nil
}

// UnmarshalJSON implements json.Unmarshaler using the default decoder
// policies.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// Interface converts v to plain Go values: nil, bool, float64, string,
// []interface{} or map[string]interface{}. Key insertion order is lost in
// the map view.
func (v *Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.text
	case KindArray:
		out := make([]interface{}, 0, len(v.items))
		for _, item := range v.items {
			out = append(out, item.Interface())
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, v.obj.Len())
		for i, key := range v.obj.keys {
			out[key] = v.obj.values[i].Interface()
		}
		return out
	}
	return nil
}
