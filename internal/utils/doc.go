// Package utils provides small platform helpers shared by the commands.
package utils
