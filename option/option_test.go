package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()
	info := MustFlagInfo("-f", "--filter", "filter extensions")

	t.Run("flag", func(t *testing.T) {
		f := NewFlag(info)
		require.Equal(t, KindFlag, f.Kind())
		require.False(t, f.Present())
		require.Equal(t, info, f.Info())
		require.Equal(t, "-f", f.Short())
	})

	t.Run("flag list", func(t *testing.T) {
		f := NewFlagList(info, "extensions")
		require.Equal(t, KindFlagList, f.Kind())
		require.False(t, f.Present())
		require.Equal(t, "EXTENSIONS", f.Name())
		require.Empty(t, f.List())
	})

	t.Run("flag data", func(t *testing.T) {
		f := NewFlagData(info, "Format")
		require.Equal(t, KindFlagData, f.Kind())
		require.False(t, f.Present())
		require.Equal(t, "FORMAT", f.Name())
		require.Equal(t, "", f.Data())
	})
}

func TestWithMethodsCopy(t *testing.T) {
	t.Parallel()
	info := MustFlagInfo("-f", "--filter", "")

	flag := NewFlag(info)
	present := flag.WithPresent(true)
	require.False(t, flag.Present())
	require.True(t, present.Present())

	list := NewFlagList(info, "ext")
	items := []string{"go", "rs"}
	filled := list.WithPresent(true).WithList(items)
	items[0] = "changed"
	require.Equal(t, []string{"go", "rs"}, filled.List())
	require.Empty(t, list.List())
	require.False(t, list.Present())

	got := filled.List()
	got[1] = "changed"
	require.Equal(t, []string{"go", "rs"}, filled.List())

	data := NewFlagData(info, "format")
	filledData := data.WithPresent(true).WithData("NUMERIC")
	require.Equal(t, "", data.Data())
	require.Equal(t, "NUMERIC", filledData.Data())
}

func TestFind(t *testing.T) {
	options := []Option{
		NewFlag(MustFlagInfo("-r", "--recursive", "")),
		NewFlagData(MustFlagInfo("", "--format", ""), "format"),
	}
	opt, ok := Find(options, "--recursive")
	require.True(t, ok)
	require.Equal(t, options[0], opt)

	opt, ok = Find(options, "--format")
	require.True(t, ok)
	require.Equal(t, KindFlagData, opt.Kind())

	_, ok = Find(options, "-x")
	require.False(t, ok)

	_, ok = Find(options, "")
	require.False(t, ok)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "flag", KindFlag.String())
	require.Equal(t, "flag list", KindFlagList.String())
	require.Equal(t, "flag data", KindFlagData.String())
	require.Equal(t, "unknown", Kind(42).String())
}
