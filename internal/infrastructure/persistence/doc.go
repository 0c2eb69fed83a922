/*
Package persistence stores drives, the audit log and deletion backups.

# Formats

Three text codecs share one record shape:

  - JSON via bytedance/sonic, indented for readability
  - YAML via goccy/go-yaml
  - TOML via pelletier/go-toml/v2

A folder record is {name, timestamp, entries}; a file record is
{name, content, timestamp}. Decoding goes through a generic document and
tells files from folders by the presence of "content".

The audit log is {errors, operations}, each listed oldest first.

# Storage

Store writes through an afero.Fs so the same code runs against the disk
or an in-memory filesystem. Saves are full overwrites. Backups may be
compressed with gzip or zstd (klauspost/compress):

	store, _ := persistence.NewStore(afero.NewOsFs(), persistence.Options{Format: "json"})
	drive, created, err := store.LoadDrive(ctx, "C:", now)
*/
package persistence
