package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName        = "toggle"
	toggleFlagTrueLiteral     = "true"
	toggleFlagAcceptedValues  = "true, false, yes, no, on, off, 1, 0"
	toggleFlagInvalidValueMsg = "invalid value %q for --%s; accepted values: %s"
	flagArgumentTerminator    = "--"
	longFlagPrefix            = "--"
	flagValueSeparator        = "="
)

var toggleFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// toggleFlagValue is a boolean flag that also accepts yes/no style literals, so that
// "--copy", "--copy=no" and "--copy off" all work.
type toggleFlagValue struct {
	target *bool
	name   string
}

func (value *toggleFlagValue) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = toggleFlagTrueLiteral
	}
	parsed, known := toggleFlagLiterals[normalized]
	if !known {
		return fmt.Errorf(toggleFlagInvalidValueMsg, input, value.name, toggleFlagAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleFlagValue) Type() string {
	return toggleFlagTypeName
}

// registerToggleFlag defines a toggle flag on flagSet bound to target.
func registerToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&toggleFlagValue{target: target, name: name}, name, usage)
	flag := flagSet.Lookup(name)
	flag.DefValue = strconv.FormatBool(defaultValue)
	flag.NoOptDefVal = toggleFlagTrueLiteral
}

// normalizeToggleArguments joins "--flag literal" pairs into "--flag=literal" for toggle flags
// of command, because pflag only reads optional values written with an equals sign.
func normalizeToggleArguments(command *cobra.Command, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleFlagTypeName {
			toggleNames[flag.Name] = struct{}{}
		}
	})
	if len(toggleNames) == 0 {
		return arguments
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == flagArgumentTerminator {
			return append(normalized, arguments[index:]...)
		}
		flagName := strings.TrimPrefix(current, longFlagPrefix)
		_, isToggle := toggleNames[flagName]
		if isToggle && strings.HasPrefix(current, longFlagPrefix) && !strings.Contains(current, flagValueSeparator) && index+1 < len(arguments) {
			literal := strings.ToLower(strings.TrimSpace(arguments[index+1]))
			if _, known := toggleFlagLiterals[literal]; known {
				normalized = append(normalized, current+flagValueSeparator+arguments[index+1])
				index++
				continue
			}
		}
		normalized = append(normalized, current)
	}
	return normalized
}
