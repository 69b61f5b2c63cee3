package clia

import (
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/AnthonyMichaelTDM/CLIA/cmdargs"
	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	NotTagged  int8
	NotTagged2 int8          `flag:"-"`
	Filter     []string      `flag:"-f,--filter" flagName:"extensions" flagUsage:"usage1"`
	Format     string        `flag:"-F,--format" flagUsage:"usage2"`
	Recursive  bool          `flag:"-r,--recursive" flagUsage:"usage3"`
	MaxDepth   *int          `flag:"--depth"`
	Timeout    time.Duration `flag:"--timeout"`
	Verbose    *bool         `flag:"-v"`
	Addr       netip.Addr    `flag:"--addr"`
	Path       string        `param:"path" paramUsage:"path to search"`
	Count      uint          `param:"count"`
}

func TestStructVar(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		args     []string
		val      testStruct
		expected testStruct
		expErr   error
	}

	testCases := []testCase{
		{
			name: "all",
			args: []string{
				"prog", "-f", "go,rs", "--format", "md", "-r", "--depth", "0x10",
				"--timeout", "1m", "-v", "--addr", "10.0.0.1", "/src", "3",
			},
			val: testStruct{NotTagged: 1, NotTagged2: 2},
			expected: testStruct{
				NotTagged: 1, NotTagged2: 2,
				Filter: []string{"go", "rs"}, Format: "md", Recursive: true,
				MaxDepth: ptr(16), Timeout: time.Minute, Verbose: ptr(true),
				Addr: netip.MustParseAddr("10.0.0.1"),
				Path: "/src", Count: 3,
			},
		},
		{
			name: "absent options keep values",
			args: []string{"prog", "/src", "3"},
			val: testStruct{
				Filter: []string{"txt"}, Format: "default", Timeout: time.Second,
			},
			expected: testStruct{
				Filter: []string{"txt"}, Format: "default", Timeout: time.Second,
				Path: "/src", Count: 3,
			},
		},
		{
			name:   "invalid value",
			args:   []string{"prog", "--depth", "deep", "/src", "3"},
			expErr: ErrInvalidValue,
		},
		{
			name:   "invalid parameter",
			args:   []string{"prog", "/src", "x"},
			expErr: ErrInvalidValue,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			val := tc.val
			parser := NewParser(nil, nil)
			require.NoError(t, parser.StructVar(&val))

			_, err := parser.Parse(tc.args)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, val)
		})
	}
}

func TestStructVar_Declarations(t *testing.T) {
	t.Parallel()
	var val testStruct
	parser := NewParser(nil, nil)
	require.NoError(t, parser.StructVar(&val))

	options := parser.Options()
	require.Len(t, options, 7)

	filter := options[0].(option.FlagList)
	require.Equal(t, "EXTENSIONS", filter.Name())
	require.Equal(t, "usage1", filter.Description())

	format := options[1].(option.FlagData)
	require.Equal(t, "FORMAT", format.Name())
	require.Equal(t, option.KindFlag, options[2].Kind())
	require.Equal(t, "MAX_DEPTH", options[3].(option.FlagData).Name())
	require.Equal(t, option.KindFlag, options[5].Kind())
	require.Equal(t, option.KindFlagData, options[6].Kind())

	params := parser.Parameters()
	require.Len(t, params, 2)
	require.Equal(t, "PATH", params[0].Name())
	require.Equal(t, "path to search", params[0].Description())
	require.Equal(t, "COUNT", params[1].Name())
}

func TestStructVar_Nested(t *testing.T) {
	t.Parallel()
	type personFlags struct {
		Name  string `flag:"--name"`
		Email string `flag:"--email"`
	}
	type parentFlags struct {
		Sender   personFlags `flagPrefix:"sender-"`
		Receiver personFlags `flagPrefix:"receiver-"`
	}

	var val parentFlags
	parser := NewParser(nil, nil)
	require.NoError(t, parser.StructVar(&val))
	_, err := parser.Parse([]string{
		"prog",
		"--sender-name", "John",
		"--sender-email", "j@email.com",
		"--receiver-name", "Dave",
		"--receiver-email", "d@email.com",
	})
	require.NoError(t, err)
	require.Equal(t, "John", val.Sender.Name)
	require.Equal(t, "j@email.com", val.Sender.Email)
	require.Equal(t, "Dave", val.Receiver.Name)
	require.Equal(t, "d@email.com", val.Receiver.Email)
}

func TestStructVar_Required(t *testing.T) {
	t.Parallel()
	type requiredFlags struct {
		Format string `flag:"-F,--format" flagRequired:"true"`
		Path   string `param:"PATH"`
	}
	var val requiredFlags
	parser := NewParser(nil, nil)
	require.NoError(t, parser.StructVar(&val))

	_, err := parser.Parse([]string{"prog", "/src"})
	require.ErrorIs(t, err, ErrIsRequired)
	require.Contains(t, err.Error(), `"-F"/"--format"`)
	require.Empty(t, val.Path, "nothing is assigned")

	_, err = parser.Parse([]string{"prog", "--format", "md", "/src"})
	require.NoError(t, err)
	require.Equal(t, "md", val.Format)
	require.Equal(t, "/src", val.Path)
}

func TestStructVar_Ignored(t *testing.T) {
	t.Parallel()
	var val testStruct
	parser := NewParser(nil, nil)
	require.NoError(t, parser.StructVar(&val, &val.Filter, &val.Count))
	require.Len(t, parser.Options(), 6)
	require.Len(t, parser.Parameters(), 1)

	_, err := parser.Parse([]string{"prog", "-f", "go", "/src"})
	require.ErrorIs(t, err, cmdargs.ErrUnknownFlag)
}

func TestStructVar_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		ptr    any
		errMsg string
	}{
		{name: "not a pointer", ptr: testStruct{}, errMsg: "expected pointer to struct"},
		{name: "not a struct", ptr: ptr(1), errMsg: "expected pointer to struct"},
		{name: "both flag and param", ptr: &struct {
			A string `flag:"-a" param:"A"`
		}{}, errMsg: "only one of"},
		{name: "usage without flag", ptr: &struct {
			A string `flagUsage:"x" param:"A"`
		}{}, errMsg: `"flagUsage" tag can be used only with "flag" tag`},
		{name: "param usage with flag", ptr: &struct {
			A string `flag:"-a" paramUsage:"x"`
		}{}, errMsg: `"paramUsage" tag can be used only with "param" tag`},
		{name: "bad flag", ptr: &struct {
			A string `flag:"a"`
		}{}, errMsg: `must start with "-"`},
		{name: "two long flags", ptr: &struct {
			A string `flag:"--a,--b"`
		}{}, errMsg: "more than one long flag"},
		{name: "malformed flag", ptr: &struct {
			A string `flag:"-ab"`
		}{}, errMsg: option.ErrInvalidFlagFormat.Error()},
		{name: "unsupported type", ptr: &struct {
			A map[string]int `flag:"-a"`
		}{}, errMsg: "unsupported field type"},
		{name: "flag name on bool", ptr: &struct {
			A bool `flag:"-a" flagName:"x"`
		}{}, errMsg: `"flagName" tag can't be used with bool fields`},
		{name: "invalid required", ptr: &struct {
			A bool `flag:"-a" flagRequired:"yes"`
		}{}, errMsg: `invalid "flagRequired" tag bool value`},
		{name: "short flag in prefixed struct", ptr: &struct {
			A struct {
				B string `flag:"-b"`
			} `flagPrefix:"a-"`
		}{}, errMsg: "can't be used in a struct with"},
		{name: "unexported", ptr: &struct {
			a string `flag:"-a"`
		}{}, errMsg: "field is not exported"},
		{name: "redefined", ptr: &struct {
			A string `flag:"-a"`
			B bool   `flag:"-a"`
		}{}, errMsg: ErrFlagRedefined.Error()},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			parser := NewParser(nil, nil)
			err := parser.StructVar(tc.ptr)
			require.Error(t, err)
			require.True(t, strings.Contains(err.Error(), tc.errMsg), err.Error())
			require.Empty(t, parser.Options())
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
