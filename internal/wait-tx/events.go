package waittx

import "encoding/base64"

// DecodeEventValue returns raw decoded from base64 when it looks like an
// encoded printable string, as emitted by nodes that still base64-encode
// event attributes. Anything else is returned unchanged.
func DecodeEventValue(raw string) string {
	if raw == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return raw
	}
	if !isMostlyPrintableASCII(decoded) {
		return raw
	}
	return string(decoded)
}

func isMostlyPrintableASCII(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	printable := 0
	for _, b := range data {
		if b == '\n' || b == '\r' || b == '\t' || (b >= 32 && b <= 126) {
			printable++
		}
	}
	return printable*100/len(data) >= 90
}
