package cpattern

// BuiltinCatalogue returns the pattern catalogue table from spec.md §4.2,
// each compiled and audited. It panics on error since these patterns are
// fixed at build time and a compile failure here is a packaging bug, not a
// runtime condition a caller can recover from.
func BuiltinCatalogue() []Pattern {
	patterns := []Pattern{
		{ID: "federal-reporter", Kind: KindCase, Regex: `\b(\d+)\s+(F\.|F\.2d|F\.3d|F\.4th|F\.\s?Supp\.(?:\s?2d|\s?3d)?)\s+(\d+|[_-]{3,})\b`},
		{ID: "supreme-court", Kind: KindCase, Regex: `\b(\d+)\s+(U\.S\.|S\.\s?Ct\.|L\.\s?Ed\.(?:\s?2d)?)\s+(\d+|[_-]{3,})\b`},
		{ID: "state-reporter", Kind: KindCase, Regex: `\b(\d+)\s+([A-Z][A-Za-z.]{1,20}(?:\s?2d|\s?3d)?)\s+(\d+|[_-]{3,})\b`},
		{ID: "uscode", Kind: KindStatute, Regex: `\b(\d+)\s+U\.S\.C\.?\s+§+\s*(\d+[A-Za-z0-9-]*)`},
		{ID: "westlaw", Kind: KindNeutral, Regex: `\b(\d{4})\s+WL\s+(\d+)\b`},
		{ID: "lexis", Kind: KindNeutral, Regex: `\b(\d{4})\s+U\.S\.\s+LEXIS\s+(\d+)\b`},
		{ID: "publaw", Kind: KindPublicLaw, Regex: `Pub\.\s?L\.(?:\s?No\.)?\s?(\d+)-(\d+)`},
		{ID: "fedreg", Kind: KindFederalRegister, Regex: `\b(\d+)\s+Fed\.\s?Reg\.\s+(\d+)\b`},
		{ID: "journal", Kind: KindJournal, Regex: `\b(\d+)\s+([A-Z][A-Za-z. ]{1,40}?)\s+(\d+)\b`},
		{ID: "id", Kind: KindID, Regex: `\b[Ii]d\.(?:\s+at\s+(\d+))?`},
		{ID: "ibid", Kind: KindIbid, Regex: `\b[Ii]bid\.(?:\s+at\s+(\d+))?`},
		{ID: "supra", Kind: KindSupra, Regex: `([A-Z][A-Za-z]+(?:\s+v\.?\s+[A-Z][A-Za-z]+)?),?\s+supra(?:,\s+at\s+(\d+))?`},
		{ID: "shortFormCase", Kind: KindShortFormCase, Regex: `\b(\d+)\s+([A-Z][A-Za-z.]{1,20})\s+at\s+(\d+)\b`},
	}

	for i := range patterns {
		patterns[i].Priority = DefaultPriority(patterns[i].Kind)
		if err := patterns[i].Compile(); err != nil {
			panic("cpattern: builtin catalogue failed to compile: " + err.Error())
		}
	}
	return patterns
}
