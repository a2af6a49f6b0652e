package main

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/codewithsam110g/dartify/internal/ir"
)

// unitDump is the JSON output structure for --dump-ir: one entry per source
// unit, declarations in emission order.
type unitDump struct {
	File         string            `json:"file"`
	Library      string            `json:"library"`
	Declarations []*ir.Declaration `json:"declarations"`
}

func newUnitDump(file, library string, final *ir.FinalMap) unitDump {
	decls := make([]*ir.Declaration, 0, final.Len())
	for _, name := range final.Keys() {
		decls = append(decls, final.Get(name))
	}
	return unitDump{File: file, Library: library, Declarations: decls}
}

func writeDump(w io.Writer, dumps []unitDump) error {
	return json.MarshalWrite(w, dumps, jsontext.WithIndent("  "))
}
