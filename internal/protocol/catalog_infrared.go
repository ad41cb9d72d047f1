package protocol

import "fmt"

var infraredEntries = []Entry{
	entry("InfraredQuery", `^QIR$`, 0, false),
	entry("InfraredSetDisabled", `^IR([01])$`, 1, false),
}

// RenderInfraredQuery renders the (QIR) request body.
func RenderInfraredQuery() []byte { return Wrap([]byte("QIR")) }

// RenderInfraredSetDisabled renders (IR<0|1>).
func RenderInfraredSetDisabled(disabled bool) []byte {
	return Wrap([]byte(fmt.Sprintf("IR%d", boolDigit(disabled))))
}
