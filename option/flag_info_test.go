package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFlagInfo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		short  string
		long   string
		expErr bool
	}{
		{name: "both", short: "-r", long: "--recursive"},
		{name: "short only", short: "-r", long: ""},
		{name: "long only", short: "", long: "--recursive"},
		{name: "upper short", short: "-F", long: "--format"},
		{name: "multi word long", short: "-d", long: "--dry-run"},
		{name: "both empty", short: "", long: "", expErr: true},
		{name: "digit short", short: "-2", long: "--two", expErr: true},
		{name: "long short", short: "-ab", long: "", expErr: true},
		{name: "short without dash", short: "r", long: "", expErr: true},
		{name: "double dash short", short: "--", long: "", expErr: true},
		{name: "symbol short", short: "-?", long: "", expErr: true},
		{name: "single dash long", short: "", long: "-recursive", expErr: true},
		{name: "long without dash", short: "", long: "recursive", expErr: true},
		{name: "digit in long", short: "", long: "--utf8", expErr: true},
		{name: "equals in long", short: "", long: "--format=x", expErr: true},
		{name: "valid short invalid long", short: "-r", long: "-recursive", expErr: true},
		{name: "invalid short valid long", short: "-2", long: "--recursive", expErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info, err := NewFlagInfo(tc.short, tc.long, "descr")
			if tc.expErr {
				require.ErrorIs(t, err, ErrInvalidFlagFormat)
				var formatErr *FormatError
				require.True(t, errors.As(err, &formatErr))
				require.Equal(t, tc.short, formatErr.Short)
				require.Equal(t, tc.long, formatErr.Long)
				require.Contains(t, err.Error(), `"`+tc.long+`"`)
				require.Equal(t, FlagInfo{}, info)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.short, info.Short())
			require.Equal(t, tc.long, info.Long())
			require.Equal(t, "descr", info.Description())
		})
	}
}

func TestMustFlagInfo(t *testing.T) {
	require.NotPanics(t, func() {
		MustFlagInfo("-h", "--help", "Prints help information")
	})
	require.Panics(t, func() {
		MustFlagInfo("-h", "-help", "Prints help information")
	})
}

func TestFlagInfo_Validate(t *testing.T) {
	require.ErrorIs(t, FlagInfo{}.Validate(), ErrInvalidFlagFormat)
	require.NoError(t, MustFlagInfo("-a", "", "").Validate())
}

func TestFlagInfo_Flags(t *testing.T) {
	require.Equal(t, []string{"-r", "--recursive"}, MustFlagInfo("-r", "--recursive", "").Flags())
	require.Equal(t, []string{"--recursive"}, MustFlagInfo("", "--recursive", "").Flags())
	require.Equal(t, []string{"-r"}, MustFlagInfo("-r", "", "").Flags())
}

func TestFlagInfo_HasFlag(t *testing.T) {
	info := MustFlagInfo("-r", "", "")
	require.True(t, info.HasFlag("-r"))
	require.False(t, info.HasFlag("--recursive"))
	require.False(t, info.HasFlag(""))
}

func TestFlagInfo_WithDescription(t *testing.T) {
	info := MustFlagInfo("-r", "--recursive", "a")
	changed := info.WithDescription("b")
	require.Equal(t, "a", info.Description())
	require.Equal(t, "b", changed.Description())
	require.Equal(t, info.Long(), changed.Long())
}
