// Package migrations incrusta los archivos SQL de goose en el binario para
// poder aplicarlos al arrancar sin depender del directorio de trabajo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
