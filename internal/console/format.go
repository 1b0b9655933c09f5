package console

import (
	"fmt"
	"reflect"
	"strings"
)

// maxListLen is the longest sequence shown inline by Format.
const maxListLen = 4

// Format renders a watched value for the compact view:
//
//   - a record with exactly two numeric fields x and y: {x=1.0, y=2.0}
//   - a sequence of at most four elements: [a, b, c]
//   - any other composite: {…}
//   - numbers: one decimal place
//   - everything else: its natural string form
func Format(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%.1f", float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprintf("%.1f", float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.1f", rv.Float())
	case reflect.Struct:
		if x, y, ok := structXY(rv); ok {
			return formatXY(x, y)
		}
		return "{…}"
	case reflect.Map:
		if x, y, ok := mapXY(rv); ok {
			return formatXY(x, y)
		}
		return "{…}"
	case reflect.Slice, reflect.Array:
		if rv.Len() > maxListLen {
			return "{…}"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(rv.Interface())
	}
}

func formatXY(x, y float64) string {
	return fmt.Sprintf("{x=%.1f, y=%.1f}", x, y)
}

func structXY(rv reflect.Value) (x, y float64, ok bool) {
	t := rv.Type()
	if t.NumField() != 2 {
		return 0, 0, false
	}
	var haveX, haveY bool
	for i := 0; i < 2; i++ {
		f := rv.Field(i)
		n, isNum := number(f)
		if !isNum || !t.Field(i).IsExported() {
			return 0, 0, false
		}
		switch strings.ToLower(t.Field(i).Name) {
		case "x":
			x, haveX = n, true
		case "y":
			y, haveY = n, true
		}
	}
	return x, y, haveX && haveY
}

func mapXY(rv reflect.Value) (x, y float64, ok bool) {
	if rv.Len() != 2 || rv.Type().Key().Kind() != reflect.String {
		return 0, 0, false
	}
	var haveX, haveY bool
	iter := rv.MapRange()
	for iter.Next() {
		n, isNum := number(iter.Value())
		if !isNum {
			return 0, 0, false
		}
		switch iter.Key().String() {
		case "x":
			x, haveX = n, true
		case "y":
			y, haveY = n, true
		}
	}
	return x, y, haveX && haveY
}

func number(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
