package clia

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

// StructVar declares options and parameters described by tags of the struct fields
// and registers the fields to be assigned by Parse:
//
//	type Config struct {
//		Filter    []string `flag:"-f,--filter" flagName:"extensions" flagUsage:"extensions to count"`
//		Format    string   `flag:"-F,--format" flagUsage:"output format"`
//		Recursive bool     `flag:"-r,--recursive" flagUsage:"search through subdirectories"`
//		Path      string   `param:"PATH" paramUsage:"path to search"`
//		Output    struct {
//			File string `flag:"--file"`
//		} `flagPrefix:"output-"` // declares "--output-file"
//	}
//
// Field type defines the option kind: bool and *bool fields are flags, []string fields are lists,
// other supported types (see getDataSetter) are data options. Fields of absent options keep their values.
// `flagRequired:"true"` makes Parse fail with ErrIsRequired if the option is absent.
// `ignoredFields` is a slice of pointers to fields that should be skipped.
//
// Nothing is declared if any field is invalid or redefines a flag or a parameter.
func (p *Parser) StructVar(ptr any, ignoredFields ...any) error {
	structValue, err := getStructPointerElem(ptr)
	if err != nil {
		return err
	}
	ignoredFieldsMap, err := newIgnoredFieldsMap(ignoredFields)
	if err != nil {
		return fmt.Errorf("invalid ignoredFields: %w", err)
	}

	// collect fields info but don't declare anything until all fields are validated
	fieldsInfo, err := collectFieldsInfoRecursive(structValue, "", "", ignoredFieldsMap)
	if err != nil {
		return err
	}

	options := slices.Clone(p.options)
	params := slices.Clone(p.params)
	for _, info := range fieldsInfo {
		if info.option != nil {
			options = append(options, info.option)
		} else {
			params = append(params, *info.param)
		}
	}
	if err := checkDeclarations(options, params); err != nil {
		return err
	}

	p.options = options
	p.params = params
	p.registeredFields = append(p.registeredFields, fieldsInfo...)
	return nil
}

// assignRegisteredFields sets fields of the registered structs from `res`.
// Nothing is assigned if a required option is absent
func (p *Parser) assignRegisteredFields(res *Result) error {
	var errs []error
	for _, field := range p.registeredFields {
		if field.option == nil || !field.isRequired {
			continue
		}
		if !res.IsPresent(field.option.Info().Flags()[0]) {
			errs = append(errs, fmt.Errorf(
				`%w: "%s"`, ErrIsRequired, strings.Join(field.option.Info().Flags(), `"/"`),
			))
		}
	}
	if len(errs) > 0 {
		return joinErr(errs...)
	}

	for _, field := range p.registeredFields {
		if field.param != nil {
			scanned, _ := param.Find(res.params, field.param.Name())
			if err := field.setParam(scanned.Data()); err != nil {
				errs = append(errs, fmt.Errorf(`field "%s", parameter "%s": %w`, field.fieldName, scanned.Name(), err))
			}
			continue
		}
		flag := field.option.Info().Flags()[0]
		scanned, ok := option.Find(res.options, flag)
		if !ok || !scanned.Present() {
			continue
		}
		if err := field.setOption(scanned); err != nil {
			errs = append(errs, fmt.Errorf(`field "%s", flag "%s": %w`, field.fieldName, flag, err))
		}
	}
	return joinErr(errs...)
}
