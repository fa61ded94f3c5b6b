// Package logging provides a simple leveled logging interface for the
// media gallery service.
//
// Levels, from most to least verbose: DEBUG, INFO, WARN, ERROR, FATAL.
// The active level is read once from the LOG_LEVEL environment variable;
// DEBUG=true forces debug logging regardless of LOG_LEVEL.
package logging
