package paginationutil

import "reflect"

// Merge iterates over fields of the struct pointed by src and, when a field is
// non-zero, copies its value to the corresponding field in dst.
//
// Merge assumes both dst and src are pointers to a struct value of the same
// type.
//
// When defaults is true, src is the source of default values instead: a field
// is copied only when dst's field is the zero value.
//
// Nested structs are treated as opaque values; the merge is shallow.
func Merge(dst, src interface{}, defaults bool) {
	vsrc := reflect.ValueOf(src)
	if !vsrc.IsValid() || vsrc.IsNil() {
		return
	}
	vsrc = vsrc.Elem()
	vdst := reflect.ValueOf(dst).Elem()
	for i := 0; i < vdst.NumField(); i++ {
		if !vdst.Field(i).CanSet() {
			continue
		}
		if defaults {
			if isZero(vdst.Field(i)) {
				vdst.Field(i).Set(vsrc.Field(i))
			}
			continue
		}
		if !isZero(vsrc.Field(i)) {
			vdst.Field(i).Set(vsrc.Field(i))
		}
	}
}

func isZero(field reflect.Value) bool {
	switch field.Kind() {
	case reflect.Chan, reflect.Func, reflect.Slice, reflect.Map, reflect.Ptr, reflect.Interface:
		return field.IsNil()
	default:
		return field.IsZero()
	}
}
