// Package export writes serialized settings as documents a settings loader
// reads directly.
//
// Key/value settings loaders treat the pairs as a dictionary: a repeated key
// keeps its last value. Collapse applies that rule while keeping each key at
// its first position, and both writers collapse before writing.
//
// WriteDotenv emits one VAR=value line per pair, with keys made safe for the
// environment: ":" becomes "__", "-" becomes "_", letters are upper-cased and
// an optional prefix is joined with "__". Values are quoted with
// github.com/joho/godotenv.
//
// WriteYAML emits a single mapping under a section key, in pair order, using
// gopkg.in/yaml.v3 nodes so every value stays a string.
package export
