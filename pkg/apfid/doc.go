// Package apfid parses and formats APFIDs, short identifiers that reference
// a chain, and optionally a residue range, within a structural entry: a
// Protein Data Bank entry, an AlphaFold model or a user uploaded structure.
//
// # Grammars
//
// Two grammar versions coexist:
//
//	v1: 1ABC_A            1ABC_A5_A20
//	v2: 1ABC:2_A          1ABC:2_A5_B20     1ABC_A5_20
//
// v2 adds the optional ":{model}" suffix and a distinct chain marker for
// the range end. v1 repeats the first chain marker at the range end.
//
// A v2 range whose end repeats the first chain is written without an end
// marker, as in "1ABC_A5_20". Parse does not read that form back with its
// range: the full grammars need a letter before the end residue, so it
// falls back to the chain-only match "1ABC_A". Only v2 ranges with a
// distinct end chain, and all v1 ranges, round trip through Parse.
//
// AlphaFold models embed their identifier as the experiment token, e.g.
// "AF-P69905-F1-V4_A".
//
// # Usage Examples
//
//	// Parse from string
//	id, err := apfid.Parse("1abc:2_A5_B20")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id.String()  // "1ABC:2_A5_B20"
//	id.Lower()   // "1abc:2_A5_B20"
//
//	// Build from fields
//	id, err = apfid.New(apfid.Fields{
//	    ExperimentID: "AF-P69905-F1-v4",
//	    ChainID:      "A",
//	})
//	id.Source().Kind()  // apfid.SourceKindAlphaFold
//	id.String()         // "AF-P69905-F1-V4_A"
//
//	// Re-render in another grammar
//	_ = id.SetVersion(apfid.V2)
//
// # Errors
//
// Errors wrap one of ErrInvalidFormat, ErrInvalidIdentifier or
// ErrUnsupportedVersion and can be tested with errors.Is.
//
// Records are plain values with no shared state. The grammar tables are
// package-level constants, so all functions are safe for concurrent use.
package apfid
