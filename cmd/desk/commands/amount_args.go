package commands

import (
	"strings"

	"go.trai.ch/zerr"
)

// amountArgs are the arguments of a command whose positional values may start
// with '-', such as negative amounts. Such commands disable cobra's flag
// parsing and only recognise the config and help flags.
type amountArgs struct {
	configPath string
	help       bool
	values     []string
}

func parseAmountArgs(args []string) (amountArgs, error) {
	var parsed amountArgs

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			parsed.values = append(parsed.values, args[i+1:]...)
			return parsed, nil
		case arg == "-h" || arg == "--help":
			parsed.help = true
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) {
				return amountArgs{}, zerr.With(zerr.New("flag needs an argument"), "flag", arg)
			}
			i++
			parsed.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			parsed.configPath = strings.TrimPrefix(arg, "--config=")
		default:
			parsed.values = append(parsed.values, arg)
		}
	}
	return parsed, nil
}
