package clia

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	flagTag         = "flag"
	flagUsageTag    = "flagUsage"
	flagNameTag     = "flagName"
	flagRequiredTag = "flagRequired"
	flagPrefixTag   = "flagPrefix"
	paramTag        = "param"
	paramUsageTag   = "paramUsage"
)

type fieldRole interface {
	getRoleTagName() string
}

// flagRole is a field declaring an option: `flag:"-r,--recursive"`
type flagRole struct {
	short      string
	long       string
	usage      string
	valueName  string
	isRequired bool
}

func (r flagRole) getRoleTagName() string {
	return flagTag
}

// withPrefix inserts `prefix` after "--" of the long flag. Short flags can't be prefixed
func (r flagRole) withPrefix(prefix string) (flagRole, error) {
	if prefix == "" {
		return r, nil
	}
	if r.short != "" {
		return r, fmt.Errorf(`short flag "%s" can't be used in a struct with "%s"`, r.short, flagPrefixTag)
	}
	r.long = "--" + prefix + strings.TrimPrefix(r.long, "--")
	return r, nil
}

// paramRole is a field bound to a parameter: `param:"PATH"`
type paramRole struct {
	name  string
	usage string
}

func (r paramRole) getRoleTagName() string {
	return paramTag
}

// nestedStructRole is a struct field whose fields declare options with prefixed long flags
type nestedStructRole struct {
	flagPrefix string
}

func (r nestedStructRole) getRoleTagName() string {
	return flagPrefixTag
}

func getFieldRole(field reflect.StructField) (fieldRole, error) {
	tags := field.Tag

	flagsStr := tags.Get(flagTag)
	if flagsStr == "-" {
		flagsStr = ""
	}
	paramName := tags.Get(paramTag)
	flagPrefix, hasFlagPrefix := tags.Lookup(flagPrefixTag)

	hasFlag := flagsStr != ""
	hasParam := paramName != ""

	behaviorTagsCount := trueCount(hasFlag, hasParam, hasFlagPrefix)
	if behaviorTagsCount == 0 {
		return nil, nil
	}
	if behaviorTagsCount > 1 {
		return nil, fmt.Errorf(
			`only one of "%s", "%s", "%s" tags can be used`,
			flagTag, paramTag, flagPrefixTag,
		)
	}

	flagRequired, hasFlagRequired, err := getBoolTag(tags, flagRequiredTag)
	if err != nil {
		return nil, err
	}
	usage, hasUsage := tags.Lookup(flagUsageTag)
	valueName, hasValueName := tags.Lookup(flagNameTag)
	paramUsage, hasParamUsage := tags.Lookup(paramUsageTag)

	if hasFlag {
		if hasParamUsage {
			return nil, fmt.Errorf(`"%s" tag can be used only with "%s" tag`, paramUsageTag, paramTag)
		}
		short, long, err := parseFlagTag(flagsStr)
		if err != nil {
			return nil, err
		}
		return flagRole{
			short:      short,
			long:       long,
			usage:      usage,
			valueName:  valueName,
			isRequired: flagRequired,
		}, nil
	}

	for tagName, hasTag := range map[string]bool{
		flagUsageTag:    hasUsage,
		flagNameTag:     hasValueName,
		flagRequiredTag: hasFlagRequired,
	} {
		if hasTag {
			return nil, fmt.Errorf(`"%s" tag can be used only with "%s" tag`, tagName, flagTag)
		}
	}

	if hasParam {
		return paramRole{
			name:  paramName,
			usage: paramUsage,
		}, nil
	}

	if hasParamUsage {
		return nil, fmt.Errorf(`"%s" tag can be used only with "%s" tag`, paramUsageTag, paramTag)
	}
	return nestedStructRole{
		flagPrefix: flagPrefix,
	}, nil
}

// parseFlagTag splits comma separated flags into a short ("-r") and a long ("--recursive") one
func parseFlagTag(tag string) (short, long string, err error) {
	for _, flag := range strings.Split(tag, ",") {
		flag = strings.TrimSpace(flag)
		switch {
		case flag == "":
			continue
		case strings.HasPrefix(flag, "--"):
			if long != "" {
				return "", "", fmt.Errorf(`more than one long flag: "%s" and "%s"`, long, flag)
			}
			long = flag
		case strings.HasPrefix(flag, "-"):
			if short != "" {
				return "", "", fmt.Errorf(`more than one short flag: "%s" and "%s"`, short, flag)
			}
			short = flag
		default:
			return "", "", fmt.Errorf(`flag "%s" must start with "-" or "--"`, flag)
		}
	}
	return short, long, nil
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}

func trueCount(values ...bool) (res int) {
	for _, v := range values {
		if v {
			res++
		}
	}
	return res
}
