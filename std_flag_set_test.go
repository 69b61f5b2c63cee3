package clia

import (
	"bytes"
	"flag"
	"testing"

	"github.com/AnthonyMichaelTDM/CLIA/param"
	"github.com/stretchr/testify/require"
)

func TestFromFlagSet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	flagSet := flag.NewFlagSet("lc", flag.ContinueOnError)
	flagSet.SetOutput(&buf)
	recursive := flagSet.Bool("r", false, "search through subdirectories")
	format := flagSet.String("format", "DEFAULT", "output `FORMAT`")

	parser, err := FromFlagSet(flagSet, []param.Parameter{param.New("path", "path to search")})
	require.NoError(t, err)
	require.Equal(t, "lc", parser.Info().Title)

	res, err := parser.Parse([]string{"lc", "-r", "--format", "BULLET", "/src"})
	require.NoError(t, err)
	require.True(t, res.IsPresent("-r"))
	path, _ := res.Parameter("path")
	require.Equal(t, "/src", path.Data())

	require.False(t, *recursive)
	require.NoError(t, res.ApplyTo(flagSet))
	require.True(t, *recursive)
	require.Equal(t, "BULLET", *format)

	require.NoError(t, parser.PrintHelp())
	require.Contains(t, buf.String(), "--format <FORMAT>")
	require.Contains(t, buf.String(), `output FORMAT (default "DEFAULT")`)
}

func TestFromFlagSet_InvalidName(t *testing.T) {
	t.Parallel()
	flagSet := flag.NewFlagSet("lc", flag.ContinueOnError)
	flagSet.Bool("dry_run", false, "")
	_, err := FromFlagSet(flagSet, nil)
	require.Error(t, err)
}
