package protocol

import "fmt"

// Favorites mirror Sources plus a by-id query. QF<id> requires a capture
// and so never matches the bare front-panel QF (catalog_frontpanel.go).
var favoriteEntries = []Entry{
	entry("FavoriteQuery", `^QF(\d{1,2})$`, 1, false),
	entry("FavoriteSetName", `^NF(\d{1,2}),"([^"]*)"$`, 2, false),
}

// RenderFavoriteQuery renders (QF<id>).
func RenderFavoriteQuery(id int) []byte { return Wrap([]byte(fmt.Sprintf("QF%d", id))) }

// RenderFavoriteSetName renders (NF<id>,"<name>").
func RenderFavoriteSetName(id int, name string) []byte {
	return Wrap([]byte(fmt.Sprintf(`NF%d,"%s"`, id, name)))
}
