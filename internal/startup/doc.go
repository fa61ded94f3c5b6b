// Package startup loads configuration from the environment, validates
// the directory layout, and provides the banner and sectioned startup
// logging for the media gallery service.
package startup
