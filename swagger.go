package main

import (
	"bytes"
	"io/ioutil"

	"github.com/alecthomas/template"
	"github.com/swaggo/swag"
)

type swaggerInfo struct {
	Version     string
	Host        string
	BasePath    string
	Title       string
	Description string
}

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = swaggerInfo{
	Version:     "1.0",
	BasePath:    "/",
	Title:       "Wallet Ledger API",
	Description: "Balance mutations and transaction history of wallet users",
}

//SwaggerDocPath : swagger path
const (
	SwaggerDocPath = "./wallet-ledger.yaml"
)

type s struct{}

func (s *s) ReadDoc() string {
	result, err := ioutil.ReadFile(SwaggerDocPath)
	if err != nil {
		return ""
	}
	doc := string(result)

	t, err := template.New("swagger_info").Parse(doc)
	if err != nil {
		return doc
	}

	var tpl bytes.Buffer
	if err := t.Execute(&tpl, SwaggerInfo); err != nil {
		return doc
	}

	return tpl.String()
}

func init() {
	swag.Register(swag.Name, &s{})
}
