package symbols

import (
	"fmt"
	"strings"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/formatters"
	"github.com/spf13/pflag"
)

type FormatOptions = formatters.FormatOptions

var Formatter = formatters.DefaultManager
var defaultOpts FormatOptions

func BindFormatFlags(flags *pflag.FlagSet) {
	formatters.BindPFlags(flags, &Flags.FormatOptions)
}

func Format(o any, opts ...FormatOptions) (string, error) {
	return Formatter.FormatWithOptions(formatters.MergeOptions(append([]FormatOptions{defaultOpts}, opts...)...), o)
}

func MustFormat(o any, opts ...FormatOptions) string {
	result, _ := Format(o, opts...)
	return result
}

// FormatToFile writes o to file, or to stdout when file is empty
func FormatToFile(o any, opts FormatOptions, file string) error {
	opts.Output = file
	_opts := formatters.MergeOptions(append([]FormatOptions{defaultOpts}, opts)...)
	if _opts.Output == "" {
		s, err := Formatter.FormatWithOptions(_opts, o)
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(s, "\n"))
		return nil
	}
	return Formatter.FormatToFile(_opts, o, _opts.Output)
}

func Text(content string, styles ...string) api.Text {
	return api.Text{
		Content: content,
		Style:   strings.Join(styles, " "),
	}
}

func Textf(content string, args ...any) api.Text {
	return api.Text{
		Content: fmt.Sprintf(content, args...),
	}
}

func UseFormatter(opts FormatOptions) {
	defaultOpts = opts
}
