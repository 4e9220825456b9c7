package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/oportunidadeshoy/migration-tools/pkg/serviceaccount"
)

// Encodes the service-account key file to base64 for pasting into the
// deployment platform's environment variables. Operator output is Spanish,
// like the rest of the platform's operator tooling.
func main() {
	run(os.Stdout, os.Args[1:])
}

func run(out io.Writer, args []string) {
	path := serviceaccount.DefaultKeyFile
	if len(args) > 0 {
		path = args[0]
	}

	encoded, err := serviceaccount.EncodeKeyFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "Error: Archivo '%s' no encontrado en el directorio actual.\n", path)
			return
		}
		fmt.Fprintf(out, "Error al codificar el archivo: %v\n", err)
		return
	}

	fmt.Fprintln(out, "--- COMIENZO DE CLAVE BASE64 ---")
	fmt.Fprintln(out, encoded)
	fmt.Fprintln(out, "--- FIN DE CLAVE BASE64 ---")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Copia el texto entre '--- COMIENZO ---' y '--- FIN ---' y pégalo en Render.")
}
