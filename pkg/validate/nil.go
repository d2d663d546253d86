package validate

import "reflect"

// IsNil reports whether i is nil or a typed nil pointer, map, slice, func,
// chan or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
