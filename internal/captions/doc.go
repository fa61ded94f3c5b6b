// Package captions parses the flat text index that maps a record id to a
// comma-delimited tag list. The file is maintained by external tagging
// tooling; its ids must align with the positional ids assigned by the
// cache builder for attachment to work.
package captions
