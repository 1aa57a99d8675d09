// Package main generates the JSON schemas shipped in docs/.
package main

import (
	"os"

	"github.com/yeisme/colorsift/pkg/utils/schema"
)

//go:generate go run github.com/yeisme/colorsift/cmd/schema
func main() {
	if _, err := os.Stat("../../docs"); os.IsNotExist(err) {
		if err := os.Mkdir("../../docs", 0755); err != nil {
			panic(err)
		}
	}

	reportSchemaFile, err := os.Create("../../docs/report_schema.json")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = reportSchemaFile.Close()
	}()

	if err = schema.GenReportSchema(reportSchemaFile); err != nil {
		panic(err)
	}

	configSchemaFile, err := os.Create("../../docs/config_schema.json")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = configSchemaFile.Close()
	}()

	if err := schema.GenConfigSchema(configSchemaFile); err != nil {
		panic(err)
	}
}
