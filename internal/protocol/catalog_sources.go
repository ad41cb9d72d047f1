package protocol

import "fmt"

var sourceEntries = []Entry{
	entry("SourceSetName", `^NO(\d{1,2}),"([^"]*)"$`, 2, false),
}

// RenderSourceSetName renders (NO<id>,"<name>").
func RenderSourceSetName(id int, name string) []byte {
	return Wrap([]byte(fmt.Sprintf(`NO%d,"%s"`, id, name)))
}
