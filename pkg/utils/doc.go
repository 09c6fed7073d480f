// Package utils provides small shared helpers used across peektab packages.
package utils
