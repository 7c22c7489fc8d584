// Package internal contains the shared infrastructure for tablekit and its hosts.
// This includes logging, configuration, theming, localisation and input timing.
// Types and functions in this package are not part of the public API.
package internal
