// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles user CUE against an embedded schema and decodes
// the result into Go structs.
//
// Every load follows the same three steps: compile the schema, compile the
// user data and unify it with a schema definition, then validate and decode.
// Validation failures come back as *ValidationError with one Issue per CUE
// error, each carrying a JSON-style path such as "commands[0].subjects[1].kind".
//
//	//go:embed wcafile_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseFile[File](schema, "wcafile.cue", "#Wcafile")
//	if err != nil {
//		return nil, err
//	}
//	return res.Value, nil
package cueutil
