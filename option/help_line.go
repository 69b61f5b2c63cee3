package option

import "strings"

const (
	helpIndent = "    "
	// longFlagColumn is where the long flag starts
	longFlagColumn = 8
	// descriptionColumn is where the description starts
	descriptionColumn = 38
)

// helpLine renders `info` as
//
//	    -s, --long <PLACEHOLDER>      description
//
// The long flag is moved to the next line if the short part doesn't fit before longFlagColumn,
// the description is moved to the next line if flags don't fit before descriptionColumn.
func helpLine(info FlagInfo, placeholder string) string {
	var sb strings.Builder
	sb.WriteString(helpIndent)
	sb.WriteString(info.short)
	if info.short == "" {
		sb.WriteByte(' ')
	} else {
		sb.WriteByte(',')
	}

	padToColumn(&sb, longFlagColumn)
	sb.WriteString(info.long)
	sb.WriteString(placeholder)

	padToColumn(&sb, descriptionColumn)
	sb.WriteString(info.description)

	return sb.String()
}

// padToColumn appends spaces to reach `column` (counted from the start of sb) or,
// if sb is already longer, starts a new line indented by `column` spaces
func padToColumn(sb *strings.Builder, column int) {
	if sb.Len() > column {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", column))
		return
	}
	sb.WriteString(strings.Repeat(" ", column-sb.Len()))
}
