// Genera un token de acceso para la API cuando la guardia está activada.
//
// Uso:
//
//	API_TOKEN_SECRET=... go run ./cmd/token [subject]
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		fmt.Fprintln(os.Stderr, "API_TOKEN_SECRET no configurado: la API corre sin guardia y no necesita token")
		os.Exit(1)
	}

	subject := "local"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	token, err := jwt.Generate(cfg.Auth.Secret, subject, cfg.Auth.Issuer, cfg.Auth.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
