package apfid

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// grammar is one candidate APFID pattern. Patterns are anchored at the
// start of the input and ignore anything after the match.
type grammar struct {
	name    string
	version Version
	re      *regexp.Regexp
}

// grammars are tried in order and the first match wins.
//
// The second chain class of v1-full is [A-Zaz]: upper case letters plus
// 'a' and 'z'. Identifiers whose end marker falls outside it drop to the
// chain-only patterns and lose their range.
var grammars = []grammar{
	{
		name:    "v1-full",
		version: V1,
		re: regexp.MustCompile(
			`^(?P<experiment_id>[A-Za-z0-9-]+)_(?P<chain_id>[A-Za-z]{1,2})(?P<start>\d+)[-_](?P<chain2_id>[A-Zaz]{1,2})(?P<end>\d+)`),
	},
	{
		name:    "v2-full",
		version: V2,
		re: regexp.MustCompile(
			`^(?P<experiment_id>[A-Za-z0-9-]+):?(?P<model>\d*)_(?P<chain_id>[A-Za-z]{1,2})_?(?P<start>\d+)[-_](?P<chain2_id>[A-Za-z]{1,2})(?P<end>\d+)`),
	},
	{
		name:    "v1-chain",
		version: V1,
		re:      regexp.MustCompile(`^(?P<experiment_id>[A-Za-z0-9-]+)_(?P<chain_id>[A-Za-z]{1,2})`),
	},
	{
		name:    "v2-chain",
		version: V2,
		re:      regexp.MustCompile(`^(?P<experiment_id>[A-Za-z0-9-]+):?(?P<model>\d*)_(?P<chain_id>[A-Za-z]{1,2})`),
	},
}

// groups returns the named groups of the first match of g in s, or nil.
func (g grammar) groups(s string) map[string]string {
	m := g.re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range g.re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}

// rawFields holds the groups extracted by a grammar before they are handed
// to New. Groups the grammar does not define keep their zero value.
type rawFields struct {
	ExperimentID string `mapstructure:"experiment_id"`
	ChainID      string `mapstructure:"chain_id"`
	Chain2ID     string `mapstructure:"chain2_id"`
	Model        int    `mapstructure:"model"`
	Start        *int   `mapstructure:"start"`
	End          *int   `mapstructure:"end"`
}

// match runs the grammars in order against s and returns the decoded
// fields of the first match along with the grammar that produced them.
func match(s string) (rawFields, grammar, error) {
	for _, g := range grammars {
		groups := g.groups(s)
		if groups == nil {
			continue
		}

		var fields rawFields
		if err := decodeGroups(groups, &fields); err != nil {
			return rawFields{}, g, &Error{
				Op:  "Parse",
				Err: fmt.Errorf("%w: %s", ErrInvalidIdentifier, err),
				Msg: s,
			}
		}
		return fields, g, nil
	}

	return rawFields{}, grammar{}, &Error{
		Op:  "Parse",
		Err: ErrInvalidIdentifier,
		Msg: fmt.Sprintf("%q matches no apfid grammar", s),
	}
}

func decodeGroups(groups map[string]string, out *rawFields) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  decimalHook,
		ErrorUnused: false,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(groups)
}

// decimalHook converts digit groups to ints in base 10. An empty group,
// as produced by the optional model number, decodes to 0.
func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	if to.Kind() != reflect.Int {
		return data, nil
	}

	s := data.(string)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}
