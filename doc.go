// Package textnorm normalizes English transcripts so that two renderings of
// the same utterance compare equal, the usual step before scoring
// speech-recognition output.
//
// # Quick Start
//
//	en, err := textnorm.NewEnglish()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(en.Normalize("Mr. Smith paid three euros and sixty five cents."))
//	// mister smith paid €3.65
//
// English lowercases, removes bracketed asides and hesitations, expands
// contractions and titles, strips symbols and diacritics, converts spoken
// numbers to digits (see package numbers) and maps British spellings to
// American ones (see package spelling). Basic does only the language-agnostic
// part: lowercasing, bracket removal and symbol stripping.
//
// # Thread Safety
//
// English and Basic are safe for concurrent use. NormalizeAll spreads a batch
// over a bounded number of goroutines, configurable via WithWorkers.
package textnorm
