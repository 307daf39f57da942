package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	timeType            = reflect.TypeOf(time.Time{})
	uuidType            = reflect.TypeOf(uuid.UUID{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// setFieldValue converts values to the field's type and assigns them.
func setFieldValue(fv reflect.Value, ft reflect.Type, values []string) error {
	if ft.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(ft.Elem()))
		}
		return setFieldValue(fv.Elem(), ft.Elem(), values)
	}

	if ft.Kind() == reflect.Slice {
		if ft.Elem().Kind() == reflect.Uint8 {
			fv.SetBytes([]byte(values[0]))
			return nil
		}
		return setSliceValue(fv, ft, values)
	}

	return setScalarValue(fv, ft, values[0])
}

func setScalarValue(fv reflect.Value, ft reflect.Type, value string) error {
	switch ft {
	case durationType:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value %q", value)
		}
		fv.SetInt(int64(d))
		return nil

	case timeType:
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid time value %q", value)
		}
		fv.Set(reflect.ValueOf(ts))
		return nil

	case uuidType:
		id, err := uuid.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid uuid value %q", value)
		}
		fv.Set(reflect.ValueOf(id))
		return nil
	}

	if fv.CanAddr() && reflect.PointerTo(ft).Implements(textUnmarshalerType) {
		u := fv.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid %s value %q: %v", ft, value, err)
		}
		return nil
	}

	switch ft.Kind() {
	case reflect.String:
		fv.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		fv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		fv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		fv.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		fv.SetBool(b)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, ft)
	}

	return nil
}

func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}

	// Be lenient with checkbox style values
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

// setSliceValue builds a slice from repeated and comma-separated values.
func setSliceValue(fv reflect.Value, ft reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				all = append(all, part)
			}
		}
	}
	if len(all) == 0 {
		return nil
	}

	slice := reflect.MakeSlice(ft, len(all), len(all))
	for i, v := range all {
		if err := setFieldValue(slice.Index(i), ft.Elem(), []string{v}); err != nil {
			return err
		}
	}

	fv.Set(slice)
	return nil
}
