package main

import (
	"JainPathshala/internal/bootstrap"
	pkg "JainPathshala/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
