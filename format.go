package graphlib

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter func(string) string

func Percent(str string) string {
	return str + "%"
}

func Degrees(str string) string {
	return str + "°"
}

func Suffix(suffix string) Formatter {
	return func(str string) string {
		return str + suffix
	}
}

func Grouping(str string) string {
	var sign string
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	integer, decimal, ok := strings.Cut(str, ".")
	n, err := strconv.ParseInt(integer, 10, 64)
	if err != nil {
		return sign + str
	}
	p := message.NewPrinter(language.English)
	str = sign + p.Sprintf("%d", n)
	if ok {
		str += "." + decimal
	}
	return str
}

// CurrencySymbol resolves the few currency names known by name. Any other
// value is used as is.
func CurrencySymbol(name string) string {
	switch strings.ToLower(name) {
	case "dollar":
		return "$"
	case "yen":
		return "¥"
	case "pound":
		return "£"
	case "lira":
		return "₤"
	case "euro":
		return "€"
	default:
		return name
	}
}

type formatChain struct {
	grouping bool
	list     []Formatter
	currency string
}

func (f formatChain) Format(v float64) string {
	return f.Apply(formatNumber(v))
}

func (f formatChain) Apply(str string) string {
	if f.grouping {
		str = Grouping(str)
	}
	for _, fn := range f.list {
		str = fn(str)
	}
	if f.currency != "" {
		if strings.HasPrefix(str, "-") {
			str = "-" + f.currency + str[1:]
		} else {
			str = f.currency + str
		}
	}
	return str
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
