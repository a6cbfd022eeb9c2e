// Package config loads and merges the ThoughtForge client SDK configuration.
//
// Configuration is read once at startup from the process environment
// (THOUGHTFORGE_API_KEY, THOUGHTFORGE_HOST, THOUGHTFORGE_PORT, ...), an
// optional godotenv-style .env file, legacy unprefixed HOST/PORT aliases, and
// built-in defaults. The sources are merged with mergo into an immutable
// [ClientConfig] that is passed by reference to the rest of the SDK; there
// are no ad hoc environment lookups outside this package.
package config
