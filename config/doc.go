// Package config loads runtime settings from defaults, an optional config file,
// an optional .env file and FLASHCARDS_ environment variables, in increasing
// precedence. Settings are cosmetic: they never change navigation behavior.
package config
