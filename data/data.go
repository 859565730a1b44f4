package data

import _ "embed"

//go:embed meta.json
var MetaData []byte
