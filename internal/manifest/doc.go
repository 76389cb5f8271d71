// Package manifest handles parsing and writing of requirements files.
// A requirements file lists one package per line, optionally pinned to an
// exact version with the "name==version" form used by pip.
package manifest
