/*
Package urplit converts materials authored for a legacy shading workflow into
the URP Lit shading model, inferring texture-slot mappings from filename
conventions.

It focuses on two small deterministic algorithms: frequency-based prefix
inference over texture names (InferPrefix) and a priority rule for choosing
between the metallic and specular workflows (ResolveWorkflow). Everything else
is a thin per-material conversion driver working against host interfaces, so
the core stays testable without any editor present.

Prefix inference example:

	prefix, ok := urplit.InferPrefix([]string{"Wall_DIFF", "Wall_NORM", "Wall_AO"})
	if ok {
		_ = prefix // "Wall"
	}

Workflow resolution example:

	dec := urplit.ResolveWorkflow(true, true)
	if dec.DropSpecular {
		// clear the specular slot and warn
	}

Batch conversion example:

	conv := urplit.Converter{
		Shaders: registry,
		Assets:  index,
		Notices: sink,
	}
	stats, err := conv.ConvertSelection(materials, nil)
	if err != nil {
		// handle error
	}
	_ = stats.Conflicts
*/
package urplit
