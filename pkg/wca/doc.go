// SPDX-License-Identifier: MPL-2.0

// Package wca is the command aggregator façade.
//
// A Builder collects commands and options; Build assembles the dictionary,
// registers the help commands and returns an Aggregator. Perform runs one
// input through the whole pipeline:
//
//	tokenize → parse → verify → callback → execute
//
// Any stage failure is returned as an *Error naming the stage.
//
//	agg, err := wca.NewBuilder().
//		Command(grammar.Command{Phrase: ".echo", Routine: echo}).
//		Build()
//	if err != nil {
//		return err
//	}
//	err = agg.Perform(ctx, `.echo "hello world"`)
package wca
