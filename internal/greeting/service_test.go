package greeting_test

import (
	"testing"

	"greet/internal/domain"
	"greet/internal/greeting"
)

func TestGreet_World_English(t *testing.T) {
	svc := greeting.New("")

	got, err := svc.Greet(domain.Request{Name: "World"})
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if got.Text != "Hello, World!" {
		t.Fatalf("got %q, want %q", got.Text, "Hello, World!")
	}
	if got.Locale != "en" {
		t.Fatalf("got locale %q, want %q", got.Locale, "en")
	}
}

func TestGreet_EmptyName_FallsBack(t *testing.T) {
	// No configured default: the built-in default applies.
	svc := greeting.New("")
	got, err := svc.Greet(domain.Request{})
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if got.Text != "Hello, World!" {
		t.Fatalf("got %q, want %q", got.Text, "Hello, World!")
	}

	// Configured default wins over the built-in one.
	svc = greeting.New("Ada")
	got, err = svc.Greet(domain.Request{})
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if got.Text != "Hello, Ada!" {
		t.Fatalf("got %q, want %q", got.Text, "Hello, Ada!")
	}
}

func TestGreet_TrimsWhitespace(t *testing.T) {
	svc := greeting.New("")
	got, err := svc.Greet(domain.Request{Name: "  Ada  "})
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if got.Text != "Hello, Ada!" {
		t.Fatalf("got %q, want %q", got.Text, "Hello, Ada!")
	}
}

func TestGreet_LocaleMatching(t *testing.T) {
	cases := []struct {
		name       string
		locale     domain.Locale
		wantText   string
		wantLocale domain.Locale
	}{
		{"exact", "fr", "Bonjour, World !", "fr"},
		{"regional variant", "pt-BR", "Olá, World!", "pt"},
		{"english variant", "en-AU", "Hello, World!", "en"},
		{"japanese", "ja", "こんにちは、Worldさん！", "ja"},
		{"unmatched", "xx", "Hello, World!", "en"},
		{"malformed", "not a tag", "Hello, World!", "en"},
	}

	svc := greeting.New("")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Greet(domain.Request{Name: "World", Locale: tc.locale})
			if err != nil {
				t.Fatalf("Greet(%q): %v", tc.locale, err)
			}
			if got.Text != tc.wantText {
				t.Fatalf("got %q, want %q", got.Text, tc.wantText)
			}
			if got.Locale != tc.wantLocale {
				t.Fatalf("got locale %q, want %q", got.Locale, tc.wantLocale)
			}
		})
	}
}

func TestGreet_Shout(t *testing.T) {
	svc := greeting.New("")
	got, err := svc.Greet(domain.Request{Name: "World", Shout: true})
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if got.Text != "HELLO, WORLD!" {
		t.Fatalf("got %q, want %q", got.Text, "HELLO, WORLD!")
	}
}

func TestLocales_EnglishFirst(t *testing.T) {
	svc := greeting.New("")
	locales := svc.Locales()
	if len(locales) == 0 {
		t.Fatal("no locales")
	}
	if locales[0] != "en" {
		t.Fatalf("first locale %q, want %q", locales[0], "en")
	}

	// Every advertised locale must render without error.
	for _, locale := range locales {
		if _, err := svc.Greet(domain.Request{Locale: locale}); err != nil {
			t.Fatalf("Greet(%q): %v", locale, err)
		}
	}
}
