package transport

import (
	"fmt"
	"strconv"
	"strings"
)

// parseBDAddr разбирает адрес вида 00:1f:e1:dd:08:3d. Байты возвращаются
// в порядке записи.
func parseBDAddr(addr string) ([6]uint8, error) {
	var out [6]uint8
	parts := strings.Split(addr, ":")
	if len(parts) != len(out) {
		return out, fmt.Errorf("invalid bluetooth address %q", addr)
	}
	for i, p := range parts {
		b, err := strconv.ParseUint(p, 16, 8)
		if err != nil || len(p) != 2 {
			return out, fmt.Errorf("invalid bluetooth address %q", addr)
		}
		out[i] = uint8(b)
	}
	return out, nil
}
