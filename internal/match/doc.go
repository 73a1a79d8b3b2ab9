// Package match maps binding names onto Go member names and ranks near
// misses for diagnostics.
//
// Binding names come from mapping files and follow whatever convention the
// remote side uses ("user-pwm-enable", "user_pwm_enable", "userPwmEnable").
// Go models expose exported members ("UserPwmEnable"). ExportedName bridges
// the two; Suggest proposes the closest existing member when a lookup fails.
//
// Key functions:
//   - ExportedName: converts a binding name into an exported Go identifier
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankNames / Suggest: rank candidate member names by similarity
package match
