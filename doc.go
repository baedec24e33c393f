// Package punct builds token-label datasets for punctuation restoration
// and applies trained punctuation models to plain text.
//
// # Quick Start
//
//	r, err := punct.New("model.onnx", "tokenizer.model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	out, err := r.Restore(ctx, "dog runs home")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Dataset Pipeline
//
// The subpackages form a batch pipeline: corpus loads annotated JSON
// documents and emits parallel input/expected TSV files, align derives
// per-token punctuation labels (optionally with forced-alignment pause
// features), dataset tabulates, splits and chunks the labeled data, and
// train prepares a run for an external NER framework. See the punct
// command for the CLI surface.
//
// # Thread Safety
//
// Restorer is safe for concurrent use. It manages an internal pool of
// ONNX sessions, configurable via WithPoolSize. The dataset pipeline
// types are plain single-threaded batch transforms.
package punct
