package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"greet/internal/domain"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "GREET"
)

// Keys accepted by Set.
const (
	KeyName   = "name"   // default greetee
	KeyLocale = "locale" // default greeting language
	KeyShout  = "shout"  // "true" to greet in upper case by default
)

// ErrUnknownKey is returned by Set for keys outside the accepted set.
var ErrUnknownKey = fmt.Errorf(
	"unknown preference key (want %s, %s or %s)", KeyName, KeyLocale, KeyShout,
)

// Store reads and writes preferences under a home directory. Environment
// variables with the GREET_ prefix override file values.
type Store struct {
	home string
	v    *viper.Viper
}

// DefaultHome returns ~/.greet, or ./.greet when the home directory cannot
// be determined.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".greet")
	}
	return filepath.Join(home, ".greet")
}

// New returns a preference store rooted at home. A missing config file is
// not an error; zero values apply until Set creates it.
func New(home string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(home, fileName+"."+fileType))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading preferences: %w", err)
		}
	}
	return &Store{home: home, v: v}, nil
}

// FilePath returns the full path of the backing config file.
func (s *Store) FilePath() string {
	return filepath.Join(s.home, fileName+"."+fileType)
}

// Get returns the value for key, or the empty string when unset.
func (s *Store) Get(key string) string { return s.v.GetString(key) }

// Set stores key and rewrites the config file, creating the home directory
// on first use.
func (s *Store) Set(key, value string) error {
	switch key {
	case KeyName, KeyLocale, KeyShout:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	if err := os.MkdirAll(s.home, 0o700); err != nil {
		return fmt.Errorf("creating preference directory %s: %w", s.home, err)
	}
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.FilePath()); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// All returns the accepted keys with their current values, set or not.
func (s *Store) All() map[string]string {
	return map[string]string{
		KeyName:   s.v.GetString(KeyName),
		KeyLocale: s.v.GetString(KeyLocale),
		KeyShout:  s.v.GetString(KeyShout),
	}
}

// Compile-time assertion that Store implements domain.Preferences.
var _ domain.Preferences = (*Store)(nil)
