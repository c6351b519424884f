// Package formatter turns amounts, dates and percentages into locale-formatted display strings.
package formatter

import (
	"strings"
	"time"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale used when none is configured or the configured one is unsupported.
const DefaultLocale = "pt-BR"

// percentFractionDigits is the fixed number of fraction digits of formatted percentages.
const percentFractionDigits = 2

var hundred = decimal.NewFromInt(100)

// supportedLocales lists the locales with a known date layout. The first entry is the fallback.
var supportedLocales = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var dateLayouts = map[language.Tag]string{
	language.BrazilianPortuguese: "02/01/2006",
	language.AmericanEnglish:     "1/2/2006",
	language.BritishEnglish:      "02/01/2006",
	language.German:              "2.1.2006",
	language.French:              "02/01/2006",
	language.Spanish:             "2/1/2006",
}

var localeMatcher = language.NewMatcher(supportedLocales)

// nbsp separates the currency symbol from the number.
const nbsp = "\u00a0"

// currencyPattern places the currency symbol around a formatted number.
type currencyPattern struct {
	suffix bool
	space  bool
}

// currencyPatterns is keyed by base language. English writes "$1,234.50", the others keep a space.
var currencyPatterns = map[string]currencyPattern{
	"pt": {space: true},
	"en": {},
	"de": {suffix: true, space: true},
	"fr": {suffix: true, space: true},
	"es": {suffix: true, space: true},
}

// Formatter formats values for one locale. It is safe for concurrent use.
type Formatter struct {
	tag        language.Tag
	printer    *message.Printer
	dateLayout string
	pattern    currencyPattern
}

// Default is the formatter for DefaultLocale.
var Default = New(DefaultLocale)

// New creates a Formatter for the closest supported match of locale.
func New(locale string) *Formatter {
	requested, err := language.Parse(locale)
	if err != nil {
		requested = supportedLocales[0]
	}

	_, index, confidence := localeMatcher.Match(requested)
	if confidence == language.No {
		index = 0
	}
	tag := supportedLocales[index]
	base, _ := tag.Base()

	return &Formatter{
		tag:        tag,
		printer:    message.NewPrinter(tag),
		dateLayout: dateLayouts[tag],
		pattern:    currencyPatterns[base.String()],
	}
}

// Locale returns the BCP 47 tag actually used by the formatter.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency formats amount as a monetary string in the given ISO 4217 currency.
// Separators and symbol placement follow the formatter's locale; the symbol and fraction digits follow the currency.
// Unknown currency codes fall back to "<CODE> <number>" with two fraction digits.
func (f *Formatter) Currency(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	info := money.GetCurrency(code)
	if info == nil {
		return code + " " + f.number(amount, 2)
	}

	amount = amount.Round(int32(info.Fraction))
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	digits := f.number(amount, info.Fraction)
	space := ""
	if f.pattern.space || endsWithLetter(info.Grapheme) {
		space = nbsp
	}
	if f.pattern.suffix {
		return sign + digits + nbsp + info.Grapheme
	}
	return sign + info.Grapheme + space + digits
}

// number formats amount with the locale separators and exactly fractionDigits fraction digits.
func (f *Formatter) number(amount decimal.Decimal, fractionDigits int) string {
	return f.printer.Sprint(number.Decimal(amount.InexactFloat64(),
		number.MinFractionDigits(fractionDigits),
		number.MaxFractionDigits(fractionDigits),
	))
}

func endsWithLetter(symbol string) bool {
	runes := []rune(symbol)
	return len(runes) > 0 && unicode.IsLetter(runes[len(runes)-1])
}

// Date formats t as a calendar date in the formatter's locale.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}

// Percentage formats a value already scaled to 0-100 as a percent string with two fraction digits.
func (f *Formatter) Percentage(value decimal.Decimal) string {
	fraction := value.Div(hundred).InexactFloat64()
	return f.printer.Sprint(number.Percent(fraction,
		number.MinFractionDigits(percentFractionDigits),
		number.MaxFractionDigits(percentFractionDigits),
	))
}

// FormatCurrency formats amount with the default formatter.
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	return Default.Currency(amount, currencyCode)
}

// FormatDate formats t with the default formatter.
func FormatDate(t time.Time) string {
	return Default.Date(t)
}

// FormatPercentage formats a 0-100 percentage with the default formatter.
func FormatPercentage(value decimal.Decimal) string {
	return Default.Percentage(value)
}
