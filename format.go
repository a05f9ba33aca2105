package dx7

import "bytes"

// FormatName is the user-facing name of the bank format.
const FormatName = "Yamaha DX7"

// FilenameExtension is the customary extension of bank files, without the
// dot.
const FilenameExtension = "syx"

// IsBank reports whether header starts with the bulk dump sysex header.
// Useful for sniffing files without a full decode; a short prefix is
// simply not a bank.
func IsBank(header []byte) bool {
	return bytes.HasPrefix(header, bankHeader[:])
}
