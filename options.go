package onecode

import "reflect"

// A DecodeOption configures a Decoder.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	disallowUnknown bool
	// variant name -> candidate types
	variants map[string][]reflect.Type
}

// DisallowUnknownFields causes the decoder to return an *UnknownFieldError
// when a dictionary contains a key that doesn't match any field of the target struct.
// By default, such entries are skipped.
func DisallowUnknownFields() DecodeOption {
	return func(o *decodeOptions) {
		o.disallowUnknown = true
	}
}

// WithVariants registers enum variants, allowing to decode into
// interface types they implement. Each variant is identified by its name
// and the interface of the target, so the same name can be used by
// several enums.
func WithVariants(variants ...Enum) DecodeOption {
	return func(o *decodeOptions) {
		if o.variants == nil {
			o.variants = make(map[string][]reflect.Type)
		}

		for _, v := range variants {
			t := reflect.TypeOf(v)
			if t.Kind() == reflect.Pointer {
				t = t.Elem()
			}
			name, _ := variantOf(t)
			o.variants[name] = append(o.variants[name], t)
		}
	}
}
