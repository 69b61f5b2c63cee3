package clia

import (
	"encoding"
	"flag"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/AnthonyMichaelTDM/CLIA/option"
)

// dataSetter assigns a scanned data payload or parameter to a field
type dataSetter func(data string) error

// optionSetter assigns a present scanned option to a field
type optionSetter func(opt option.Option) error

var durationType = reflect.TypeOf(time.Duration(0))

// getOptionSetter returns the kind of option a field declares by its type and the setter:
//   - bool, *bool: option.KindFlag, set to true if present
//   - []string: option.KindFlagList
//   - any type supported by getDataSetter: option.KindFlagData
func getOptionSetter(fieldValue reflect.Value) (option.Kind, optionSetter, error) {
	valueType := fieldValue.Type()

	switch {
	case valueType.Kind() == reflect.Bool:
		return option.KindFlag, func(option.Option) error {
			fieldValue.SetBool(true)
			return nil
		}, nil
	case valueType.Kind() == reflect.Ptr && valueType.Elem().Kind() == reflect.Bool:
		return option.KindFlag, func(option.Option) error {
			ptr := reflect.New(valueType.Elem())
			ptr.Elem().SetBool(true)
			fieldValue.Set(ptr)
			return nil
		}, nil
	case valueType.Kind() == reflect.Slice && valueType.Elem().Kind() == reflect.String:
		return option.KindFlagList, func(opt option.Option) error {
			list, ok := opt.(option.FlagList)
			if !ok {
				return fmt.Errorf("list option expected, got %T", opt)
			}
			items := list.List()
			slice := reflect.MakeSlice(valueType, len(items), len(items))
			for i, item := range items {
				slice.Index(i).SetString(item)
			}
			fieldValue.Set(slice)
			return nil
		}, nil
	}

	setData, err := getDataSetter(fieldValue)
	if err != nil {
		return 0, nil, err
	}
	return option.KindFlagData, func(opt option.Option) error {
		data, ok := opt.(option.FlagData)
		if !ok {
			return fmt.Errorf("data option expected, got %T", opt)
		}
		return setData(data.Data())
	}, nil
}

// getDataSetter returns a setter parsing a string into the field.
// Supported are strings, integers, floats, bools, time.Duration and pointers to them,
// flag.Value, encoding.TextUnmarshaler and func(string) error
func getDataSetter(fieldValue reflect.Value) (dataSetter, error) {
	valueType := fieldValue.Type()

	if valueType.Kind() == reflect.Ptr {
		valueToParsePtr := reflect.New(valueType.Elem())
		if primitiveSetter := getPrimitiveSetter(valueToParsePtr.Elem()); primitiveSetter != nil {
			return func(data string) error {
				if err := primitiveSetter(data); err != nil {
					return err
				}
				fieldValue.Set(valueToParsePtr)
				return nil
			}, nil
		}
	}

	if primitiveSetter := getPrimitiveSetter(fieldValue); primitiveSetter != nil {
		return primitiveSetter, nil
	}

	if valueType.Kind() != reflect.Ptr && fieldValue.CanAddr() {
		if setter := getInterfaceSetter(fieldValue.Addr()); setter != nil {
			return setter, nil
		}
	}
	if setter := getInterfaceSetter(fieldValue); setter != nil {
		if isNilable(valueType.Kind()) && fieldValue.IsNil() {
			return nil, fmt.Errorf("%s is nil", valueType)
		}
		return setter, nil
	}

	return nil, fmt.Errorf("unsupported field type %s", valueType)
}

func getInterfaceSetter(value reflect.Value) dataSetter {
	if !value.CanInterface() {
		return nil
	}
	switch v := value.Interface().(type) {
	case flag.Value:
		return v.Set
	case encoding.TextUnmarshaler:
		return func(data string) error {
			return v.UnmarshalText([]byte(data))
		}
	case func(string) error:
		return v
	}
	return nil
}

func getPrimitiveSetter(value reflect.Value) dataSetter {
	valueType := value.Type()

	switch valueType.Kind() {
	case reflect.String:
		return func(data string) error {
			value.SetString(data)
			return nil
		}
	case reflect.Bool:
		return func(data string) error {
			b, err := strconv.ParseBool(data)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			value.SetBool(b)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if valueType == durationType {
			return func(data string) error {
				d, err := time.ParseDuration(data)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidValue, err)
				}
				value.SetInt(int64(d))
				return nil
			}
		}
		return func(data string) error {
			i, err := strconv.ParseInt(data, 0, valueType.Bits())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			value.SetInt(i)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(data string) error {
			u, err := strconv.ParseUint(data, 0, valueType.Bits())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			value.SetUint(u)
			return nil
		}
	case reflect.Float32, reflect.Float64:
		return func(data string) error {
			f, err := strconv.ParseFloat(data, valueType.Bits())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			value.SetFloat(f)
			return nil
		}
	default:
		return nil
	}
}

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return true
	}
	return false
}
