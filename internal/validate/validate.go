// Package validate holds small encoding checks for hash references.
package validate

import (
	"encoding/base64"
	"encoding/hex"
)

// IsHex returns true if s is valid even-length hex.
func IsHex(s string) bool {
	if s == "" || len(s)%2 == 1 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsBase64Std reports whether s is valid standard base64 (padding optional).
func IsBase64Std(s string) bool {
	if s == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return true
	}
	_, err = base64.RawStdEncoding.DecodeString(s)
	return err == nil
}
