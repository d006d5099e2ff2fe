package behaviour

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrFieldType    = errors.New("field type mismatch")
	ErrNotStruct    = errors.New("component is not a struct pointer")
)

// Field is a public script field as shown in an inspector
type Field struct {
	Name  string
	Kind  reflect.Kind
	Value interface{}
}

// InspectFields lists the exported numeric, bool and string fields of a
// component in declaration order. Embedded structs and fields tagged
// `json:"-"` are skipped.
func InspectFields(component interface{}) []Field {
	v, ok := structValue(component)
	if !ok {
		return nil
	}
	t := v.Type()

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !inspectable(sf) {
			continue
		}
		fields = append(fields, Field{
			Name:  sf.Name,
			Kind:  sf.Type.Kind(),
			Value: v.Field(i).Interface(),
		})
	}
	return fields
}

// GetField returns the current value of an inspectable field. name matches
// either the Go field name or its json tag name.
func GetField(component interface{}, name string) (interface{}, error) {
	fv, err := lookupField(component, name)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// SetField assigns value to an inspectable field. Numeric values are
// converted to the field's numeric type and rejected if they would overflow
// it or, for integer fields, lose a fraction. Bools and strings must match.
func SetField(component interface{}, name string, value interface{}) error {
	fv, err := lookupField(component, name)
	if err != nil {
		return err
	}

	in := reflect.ValueOf(value)
	if !in.IsValid() {
		return fmt.Errorf("%s: nil value: %w", name, ErrFieldType)
	}

	switch {
	case in.Type().AssignableTo(fv.Type()):
		fv.Set(in)
	case isNumeric(in.Kind()) && isNumeric(fv.Kind()):
		if !convertNumber(in, fv) {
			return fmt.Errorf("%s: %v does not fit in %s: %w", name, value, fv.Type(), ErrFieldType)
		}
	default:
		return fmt.Errorf("%s: cannot assign %s to %s: %w", name, in.Type(), fv.Type(), ErrFieldType)
	}
	return nil
}

func lookupField(component interface{}, name string) (reflect.Value, error) {
	v, ok := structValue(component)
	if !ok {
		return reflect.Value{}, ErrNotStruct
	}
	if name == "" {
		return reflect.Value{}, fmt.Errorf("empty field name: %w", ErrUnknownField)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !inspectable(sf) {
			continue
		}
		if n := jsonName(sf); sf.Name == name || (n != "" && n == name) {
			return v.Field(i), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%q: %w", name, ErrUnknownField)
}

// convertNumber stores in into the numeric field fv, reporting false when the
// value does not survive the conversion.
func convertNumber(in, fv reflect.Value) bool {
	switch {
	case isFloat(fv.Kind()):
		var f float64
		switch {
		case isFloat(in.Kind()):
			f = in.Float()
		case isInt(in.Kind()):
			f = float64(in.Int())
		default:
			f = float64(in.Uint())
		}
		if fv.OverflowFloat(f) {
			return false
		}
		fv.SetFloat(f)

	case isInt(fv.Kind()):
		var i int64
		switch {
		case isFloat(in.Kind()):
			f := in.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return false
			}
			i = int64(f)
		case isInt(in.Kind()):
			i = in.Int()
		default:
			u := in.Uint()
			if u > math.MaxInt64 {
				return false
			}
			i = int64(u)
		}
		if fv.OverflowInt(i) {
			return false
		}
		fv.SetInt(i)

	default:
		var u uint64
		switch {
		case isFloat(in.Kind()):
			f := in.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return false
			}
			u = uint64(f)
		case isInt(in.Kind()):
			i := in.Int()
			if i < 0 {
				return false
			}
			u = uint64(i)
		default:
			u = in.Uint()
		}
		if fv.OverflowUint(u) {
			return false
		}
		fv.SetUint(u)
	}
	return true
}

func structValue(component interface{}) (reflect.Value, bool) {
	v := reflect.ValueOf(component)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return v, true
}

func inspectable(sf reflect.StructField) bool {
	if sf.Anonymous || !sf.IsExported() {
		return false
	}
	if sf.Tag.Get("json") == "-" {
		return false
	}
	k := sf.Type.Kind()
	return isNumeric(k) || k == reflect.Bool || k == reflect.String
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
