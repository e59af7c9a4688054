// Package greeting renders greetings in a fixed set of locales.
//
// Locale resolution goes through a language matcher, so regional variants
// (en-AU, pt-BR) land on a supported base tag and anything unmatched falls
// back to English.
package greeting
