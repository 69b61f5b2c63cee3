package clia

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
	"github.com/fatih/camelcase"
)

// fieldInfo contains info about a struct field that declares an option or a parameter
type fieldInfo struct {
	fieldName string
	// option and setOption are set for fields tagged with "flag"
	option     option.Option
	isRequired bool
	setOption  optionSetter
	// param and setParam are set for fields tagged with "param"
	param    *param.Parameter
	setParam dataSetter
}

// collectFieldsInfoRecursive collects info about all tagged fields of the given struct including
// nested structs. It validates the types of the fields and their tags and returns an error if any
// of them is invalid.
func collectFieldsInfoRecursive(
	structValue reflect.Value,
	parentFlagPrefix string,
	parentFieldName string,
	ignoredFields map[unsafe.Pointer]struct{},
) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		fieldVal := structValue.Field(i)
		if _, isIgnored := ignoredFields[fieldVal.Addr().UnsafePointer()]; isIgnored {
			continue
		}

		field := sValType.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)
		fieldRole, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if fieldRole == nil {
			continue
		}
		fieldInfo, err := collectFieldInfo(
			field,
			fieldVal,
			fieldName,
			parentFlagPrefix,
			fieldRole,
			ignoredFields,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, fieldInfo...)
	}
	return res, nil
}

func collectFieldInfo(
	field reflect.StructField,
	fieldValue reflect.Value,
	fieldName string,
	parentFlagPrefix string,
	fieldRole fieldRole,
	ignoredFields map[unsafe.Pointer]struct{},
) (res []fieldInfo, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, fieldRole.getRoleTagName(), err)
		}
	}()

	if !field.IsExported() {
		return nil, errors.New("field is not exported")
	}

	switch role := fieldRole.(type) {
	case nestedStructRole:
		if field.Type.Kind() != reflect.Struct {
			return nil, fmt.Errorf("struct expected, got %s", field.Type)
		}
		return collectFieldsInfoRecursive(
			fieldValue,
			parentFlagPrefix+role.flagPrefix,
			fieldName,
			ignoredFields,
		)
	case paramRole:
		setParam, err := getDataSetter(fieldValue)
		if err != nil {
			return nil, err
		}
		p := param.New(role.name, role.usage)
		return []fieldInfo{{
			fieldName: fieldName,
			param:     &p,
			setParam:  setParam,
		}}, nil
	case flagRole:
		if role, err = role.withPrefix(parentFlagPrefix); err != nil {
			return nil, err
		}
		kind, setOption, err := getOptionSetter(fieldValue)
		if err != nil {
			return nil, err
		}
		opt, err := newFieldOption(role, kind, field.Name)
		if err != nil {
			return nil, err
		}
		return []fieldInfo{{
			fieldName:  fieldName,
			option:     opt,
			isRequired: role.isRequired,
			setOption:  setOption,
		}}, nil
	}
	return nil, nil
}

// newFieldOption creates an option of the given kind. List and data options are named by
// the "flagName" tag or by the field name words joined with "_": MaxDepth gives MAX_DEPTH
func newFieldOption(role flagRole, kind option.Kind, fieldName string) (option.Option, error) {
	info, err := option.NewFlagInfo(role.short, role.long, role.usage)
	if err != nil {
		return nil, err
	}
	valueName := role.valueName
	if valueName == "" {
		valueName = strings.Join(camelcase.Split(fieldName), "_")
	}
	switch kind {
	case option.KindFlag:
		if role.valueName != "" {
			return nil, fmt.Errorf(`"%s" tag can't be used with bool fields`, flagNameTag)
		}
		return option.NewFlag(info), nil
	case option.KindFlagList:
		return option.NewFlagList(info, valueName), nil
	default:
		return option.NewFlagData(info, valueName), nil
	}
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	if val.IsNil() {
		return reflect.Value{}, errors.New("expected pointer to struct, got nil")
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	return res, nil
}

func newIgnoredFieldsMap(fields []any) (map[unsafe.Pointer]struct{}, error) {
	res := make(map[unsafe.Pointer]struct{})
	for i, field := range fields {
		val := reflect.ValueOf(field)
		if val.Kind() != reflect.Ptr {
			return nil, fmt.Errorf(`element %d: pointer expected, got %T`, i, field)
		}
		res[val.UnsafePointer()] = struct{}{}
	}
	return res, nil
}
