package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

type CommandType string

const (
	CmdLookup CommandType = "lookup"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type     CommandType
	Mode     entity.Mode
	Weekday  string
	Timezone string
	Raw      string
}

// ParseCommand parses the text of `/when [next|this] <day> [timezone]`.
// The mode defaults to next. The weekday itself is validated by the service.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Type: CmdLookup,
		Mode: entity.ModeNext,
		Raw:  text,
	}

	switch strings.ToLower(parts[0]) {
	case "help":
		cmd.Type = CmdHelp
		return cmd, nil
	case string(entity.ModeNext), string(entity.ModeThis):
		cmd.Mode, _ = entity.ParseMode(parts[0])
		parts = parts[1:]
	}

	switch len(parts) {
	case 0:
		return nil, fmt.Errorf("missing weekday")
	case 1:
		cmd.Weekday = parts[0]
	case 2:
		cmd.Weekday = parts[0]
		cmd.Timezone = parts[1]
	default:
		return nil, fmt.Errorf("too many arguments: %s", strings.Join(parts[2:], " "))
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Usage:*

• ` + "`/when next friday`" + ` - Next Friday, never today, in the default timezone
• ` + "`/when this friday`" + ` - Friday of the current week, today if it is Friday
• ` + "`/when next sat America/New_York`" + ` - Use a specific IANA timezone (any casing)
• ` + "`/when help`" + ` - Show this message

Weekdays accept short forms like ` + "`mon`, `tues`, `thur`, `r`, `f`, `sat`, `sun`."
}
