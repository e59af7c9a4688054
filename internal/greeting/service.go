package greeting

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"greet/internal/domain"
)

// DefaultName is greeted when neither the request nor the preferences name
// anyone.
const DefaultName = "World"

// supported fixes the matcher priority. English is first so it is the
// fallback for tags that match nothing else.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Japanese,
	language.Swedish,
}

// templates maps each supported locale to its greeting format string.
var templates = map[domain.Locale]string{
	"en": "Hello, %s!",
	"es": "¡Hola, %s!",
	"fr": "Bonjour, %s !",
	"de": "Hallo, %s!",
	"it": "Ciao, %s!",
	"pt": "Olá, %s!",
	"nl": "Hallo, %s!",
	"ja": "こんにちは、%sさん！",
	"sv": "Hej, %s!",
}

// Service renders greetings in a fixed set of locales.
type Service struct {
	matcher     language.Matcher
	defaultName string
}

// New returns a greeting service. defaultName replaces empty request names;
// when it is itself empty, DefaultName applies.
func New(defaultName string) *Service {
	if defaultName == "" {
		defaultName = DefaultName
	}
	return &Service{
		matcher:     language.NewMatcher(supported),
		defaultName: defaultName,
	}
}

// Greet renders the greeting described by req. The requested locale is
// matched against the supported set, so variants like "pt-BR" land on
// their base tag and unmatched tags fall back to English.
func (s *Service) Greet(req domain.Request) (domain.Greeting, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = s.defaultName
	}

	tag := s.resolve(req.Locale)
	locale := domain.Locale(tag.String())

	format, ok := templates[locale]
	if !ok {
		return domain.Greeting{}, fmt.Errorf("no greeting template for locale %q", locale)
	}

	text := message.NewPrinter(tag).Sprintf(format, name)
	if req.Shout {
		text = cases.Upper(tag).String(text)
	}
	return domain.Greeting{Text: text, Locale: locale}, nil
}

// Locales lists the supported locales in matcher priority order.
func (s *Service) Locales() []domain.Locale {
	out := make([]domain.Locale, len(supported))
	for i, tag := range supported {
		out[i] = domain.Locale(tag.String())
	}
	return out
}

// resolve maps a requested locale to a tag from the supported set. Empty or
// malformed tags resolve to English.
func (s *Service) resolve(locale domain.Locale) language.Tag {
	if locale == "" {
		return language.English
	}
	want, err := language.Parse(string(locale))
	if err != nil {
		return language.English
	}
	// Index into supported rather than using the matched tag directly, so
	// extension subtags never leak into template lookup.
	_, index, _ := s.matcher.Match(want)
	return supported[index]
}

// Compile-time assertion that Service implements domain.Greeter.
var _ domain.Greeter = (*Service)(nil)
